package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/scjalliance/procwatch/monitor"
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/watcher"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func record(proc watcher.Process, running bool, at time.Time, anyRunning bool, outcome reaction.Outcome) monitor.Record {
	return monitor.Record{
		Transition: watcher.Transition{Process: proc, Previous: !running, Running: running, Time: at},
		States:     watcher.States{{Process: proc, Running: anyRunning}},
		Outcome:    outcome,
	}
}

func TestJournalRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	proc := watcher.NewProcess("x.exe")
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	outcome := reaction.Outcome{
		Fired:  []reaction.Reaction{reaction.AlertReaction, reaction.HotkeyReaction},
		Errors: []error{errors.New("hotkey blocked")},
	}
	if err := j.Record(record(proc, true, start, true, outcome)); err != nil {
		t.Fatal(err)
	}
	if err := j.Record(record(proc, false, start.Add(time.Second), false, reaction.Outcome{})); err != nil {
		t.Fatal(err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first, second := entries[0], entries[1]
	if !first.Running || second.Running {
		t.Fatalf("entries out of order: %+v", entries)
	}
	if first.Seq >= second.Seq {
		t.Fatalf("sequence not increasing: %d, %d", first.Seq, second.Seq)
	}
	if len(first.Reactions) != 2 || first.Reactions[0] != "alert" || len(first.Errors) != 1 {
		t.Fatalf("reactions not journaled: %+v", first)
	}
	if first.Episode == "" || first.Episode != second.Episode {
		t.Fatalf("episode not shared: %q, %q", first.Episode, second.Episode)
	}
	if !first.Time.Equal(start) {
		t.Fatalf("time = %v, want %v", first.Time, start)
	}

	// A new episode gets a new identifier.
	if err := j.Record(record(proc, true, start.Add(time.Minute), true, reaction.Outcome{})); err != nil {
		t.Fatal(err)
	}
	latest, err := j.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(latest) != 1 || latest[0].Episode == first.Episode {
		t.Fatalf("new episode reused identifier: %+v", latest)
	}
}

func TestJournalRecentEmpty(t *testing.T) {
	j := openTestJournal(t)
	entries, err := j.Recent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("empty journal returned %v", entries)
	}
}

func TestJournalPrune(t *testing.T) {
	j := openTestJournal(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entry := Entry{Time: base.Add(time.Duration(i) * time.Hour), Process: "x.exe", Running: i%2 == 0}
		if err := j.Append(entry); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := j.Prune(base.Add(2 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Fatalf("removed %d entries, want 2", removed)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || !entries[0].Time.Equal(base.Add(2*time.Hour)) {
		t.Fatalf("unexpected entries after prune: %+v", entries)
	}
}

func TestEpisodeID(t *testing.T) {
	at := time.Unix(1700000000, 0)
	a := NewEpisodeID("host", at, "x.exe")
	b := NewEpisodeID("host", at, "x.exe")
	c := NewEpisodeID("host", at.Add(time.Nanosecond), "x.exe")
	if a != b {
		t.Fatal("identical input produced different identifiers")
	}
	if a == c {
		t.Fatal("different start times produced the same identifier")
	}
	if len(a) != 38 {
		t.Fatalf("identifier length %d, want 38", len(a))
	}
}
