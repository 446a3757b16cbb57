package monitor

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

type fakeTable struct {
	mutex     sync.Mutex
	procs     map[int]string
	listErr   error
	listPanic string
}

func (f *fakeTable) set(pid int, name string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if name == "" {
		delete(f.procs, pid)
	} else {
		f.procs[pid] = name
	}
}

func (f *fakeTable) All() ([]watcher.Entry, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.listPanic != "" {
		panic(f.listPanic)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []watcher.Entry
	for pid, name := range f.procs {
		out = append(out, watcher.Entry{PID: pid, Name: name})
	}
	return out, nil
}

func (f *fakeTable) Lookup(pid int) (string, bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	name, ok := f.procs[pid]
	if !ok {
		return "", false, errors.New("not found")
	}
	return name, true, nil
}

// fakeActions counts the actions it is asked to perform.
type fakeActions struct {
	hotkeys, kills, pauses, mutes, sleeps int
	terminateErr                          error
}

func (f *fakeActions) SendHotkey(string) error {
	f.hotkeys++
	return nil
}

func (f *fakeActions) Terminate(string) error {
	f.kills++
	return f.terminateErr
}

func (f *fakeActions) MediaPauseToggle() error {
	f.pauses++
	return nil
}

func (f *fakeActions) MuteToggle() error {
	f.mutes++
	return nil
}

func (f *fakeActions) Sleep() error {
	f.sleeps++
	return nil
}

type noticeLog struct {
	mutex   sync.Mutex
	notices []reaction.Notice
}

func (l *noticeLog) Notify(n reaction.Notice) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.notices = append(l.notices, n)
}

func (l *noticeLog) count(kind reaction.NoticeKind) (n int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for _, notice := range l.notices {
		if notice.Kind == kind {
			n++
		}
	}
	return
}

type recordLog struct {
	records []Record
}

func (l *recordLog) Record(r Record) error {
	l.records = append(l.records, r)
	return nil
}

type fakeAutostart struct {
	enabled bool
	err     error
	sets    int
}

func (f *fakeAutostart) Enabled() (bool, error) { return f.enabled, nil }

func (f *fakeAutostart) Set(enabled bool) error {
	f.sets++
	if f.err != nil {
		return f.err
	}
	f.enabled = enabled
	return nil
}

type fixture struct {
	table     *fakeTable
	actions   *fakeActions
	notices   *noticeLog
	records   *recordLog
	autostart *fakeAutostart
	store     *settings.Store
	changes   []settings.Settings
	service   *Service
}

func newFixture(t *testing.T, s settings.Settings, procs ...watcher.Process) *fixture {
	t.Helper()
	f := &fixture{
		table:     &fakeTable{procs: make(map[int]string)},
		actions:   &fakeActions{},
		notices:   &noticeLog{},
		records:   &recordLog{},
		autostart: &fakeAutostart{},
	}
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := settings.Save(path, s); err != nil {
		t.Fatal(err)
	}
	store, err := settings.OpenStore(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.store = store
	f.service = New(Config{
		Settings:          store,
		Table:             f.table,
		Processes:         procs,
		Actions:           f.actions,
		Notifier:          f.notices,
		Autostart:         f.autostart,
		Recorders:         []Recorder{f.records},
		OnSettingsChanged: func(s settings.Settings) { f.changes = append(f.changes, s) },
	})
	return f
}

func TestEndToEndAlerts(t *testing.T) {
	s := settings.Defaults()
	s.CheckInterval = 0.05
	s.ShowAlert = true
	s.AlertDuration = 2
	f := newFixture(t, s, watcher.NewProcess("X.exe"))

	// t=0: X appears
	f.table.set(1, "X.exe")
	transitions, err := f.service.Cycle()
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 1 || transitions[0].Previous || !transitions[0].Running {
		t.Fatalf("appearance: %+v", transitions)
	}

	// X remains for a while
	for i := 0; i < 19; i++ {
		if transitions, _ := f.service.Cycle(); len(transitions) != 0 {
			t.Fatalf("cycle %d while running: %+v", i, transitions)
		}
	}

	// t=1: X disappears
	f.table.set(1, "")
	transitions, err = f.service.Cycle()
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 1 || !transitions[0].Previous || transitions[0].Running {
		t.Fatalf("disappearance: %+v", transitions)
	}

	// X stays absent for 10 more cycles
	for i := 0; i < 10; i++ {
		if transitions, _ := f.service.Cycle(); len(transitions) != 0 {
			t.Fatalf("cycle %d while absent: %+v", i, transitions)
		}
	}

	if n := f.notices.count(reaction.Alert); n != 2 {
		t.Fatalf("got %d alerts, want 2", n)
	}
	for _, notice := range f.notices.notices {
		if notice.Duration != 2*time.Second {
			t.Fatalf("alert duration %v, want 2s", notice.Duration)
		}
	}
	if len(f.records.records) != 2 {
		t.Fatalf("got %d records, want 2", len(f.records.records))
	}
}

func TestPollFailureReportedOnce(t *testing.T) {
	f := newFixture(t, settings.Defaults())
	f.table.listErr = errors.New("boom")

	for i := 0; i < 5; i++ {
		if _, err := f.service.Cycle(); err == nil {
			t.Fatal("expected poll error")
		}
	}
	if n := f.notices.count(reaction.Warning); n != 1 {
		t.Fatalf("got %d warnings for a persistent failure, want 1", n)
	}

	f.table.listErr = nil
	if _, err := f.service.Cycle(); err != nil {
		t.Fatal(err)
	}
	f.table.listErr = errors.New("boom again")
	f.service.Cycle()
	if n := f.notices.count(reaction.Warning); n != 2 {
		t.Fatalf("got %d warnings after recovery, want 2", n)
	}
}

func TestKillSuppressesStopTransition(t *testing.T) {
	s := settings.Defaults()
	s.AutoKill = true
	f := newFixture(t, s)

	f.table.set(9, watcher.RemoteDesktopAgent)
	if _, err := f.service.Cycle(); err != nil {
		t.Fatal(err)
	}
	if f.service.Status().States.Any() {
		t.Fatal("killed process still marked running")
	}

	// Termination worked: the process is gone and nothing else is reported.
	f.table.set(9, "")
	if transitions, _ := f.service.Cycle(); len(transitions) != 0 {
		t.Fatalf("unexpected transitions: %+v", transitions)
	}
}

func TestFailedKillKeepsProcessRunning(t *testing.T) {
	s := settings.Defaults()
	s.AutoKill = true
	s.EnableHotkey = true
	f := newFixture(t, s)
	f.actions.terminateErr = errors.New("access denied")

	f.table.set(9, watcher.RemoteDesktopAgent)
	for i := 0; i < 5; i++ {
		if _, err := f.service.Cycle(); err != nil {
			t.Fatal(err)
		}
	}

	if len(f.records.records) != 1 {
		t.Fatalf("got %d transitions, want 1", len(f.records.records))
	}
	if f.actions.hotkeys != 1 || f.actions.kills != 1 {
		t.Fatalf("hotkeys=%d kills=%d, want 1 each", f.actions.hotkeys, f.actions.kills)
	}
	if n := f.notices.count(reaction.Warning); n != 1 {
		t.Fatalf("got %d warnings, want 1", n)
	}
	if !f.service.Status().States.Any() {
		t.Fatal("surviving process marked stopped")
	}
}

func TestSleepEnabledWhileRunning(t *testing.T) {
	f := newFixture(t, settings.Defaults())

	f.table.set(3, watcher.RemoteDesktopAgent)
	if _, err := f.service.Cycle(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.Toggle(settings.EnableSleep); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if transitions, _ := f.service.Cycle(); len(transitions) != 0 {
			t.Fatalf("unexpected transitions: %+v", transitions)
		}
	}

	if f.actions.sleeps != 1 {
		t.Fatalf("slept %d times, want 1", f.actions.sleeps)
	}
	if f.store.Current().EnableSleep {
		t.Fatal("sleep still enabled after firing")
	}
}

func TestSleepOutOfScope(t *testing.T) {
	s := settings.Defaults()
	s.OnlyRTCEffective = true
	f := newFixture(t, s)

	f.table.set(3, watcher.ScreenCaptureAgent)
	f.service.Cycle()
	if _, err := f.service.Toggle(settings.EnableSleep); err != nil {
		t.Fatal(err)
	}
	f.service.Cycle()

	if f.actions.sleeps != 0 {
		t.Fatalf("slept %d times for an out of scope process", f.actions.sleeps)
	}
}

func TestCyclePanicRecovered(t *testing.T) {
	f := newFixture(t, settings.Defaults())
	f.table.listPanic = "table corrupted"

	f.service.poll()

	if n := f.notices.count(reaction.Warning); n != 1 {
		t.Fatalf("got %d warnings, want 1", n)
	}

	f.table.listPanic = ""
	f.table.set(3, watcher.ScreenCaptureAgent)
	if transitions, err := f.service.Cycle(); err != nil || len(transitions) != 1 {
		t.Fatalf("cycle after panic: transitions=%v err=%v", transitions, err)
	}
}

func TestToggleAutostart(t *testing.T) {
	f := newFixture(t, settings.Defaults())

	s, err := f.service.Toggle(settings.AutoStart)
	if err != nil {
		t.Fatal(err)
	}
	if !s.AutoStart || !f.autostart.enabled {
		t.Fatalf("autostart not enabled: settings=%v registration=%v", s.AutoStart, f.autostart.enabled)
	}
	if len(f.changes) != 1 {
		t.Fatalf("got %d change callbacks, want 1", len(f.changes))
	}

	f.autostart.err = errors.New("access denied")
	if _, err := f.service.Toggle(settings.AutoStart); err == nil {
		t.Fatal("expected autostart failure")
	}
	if !f.store.Current().AutoStart {
		t.Fatal("failed autostart change flipped the setting")
	}
}

func TestToggleMutualExclusion(t *testing.T) {
	f := newFixture(t, settings.Defaults())

	if _, err := f.service.Toggle(settings.ShowAlert); err != nil {
		t.Fatal(err)
	}
	s, err := f.service.Toggle(settings.AutoKill)
	if err != nil {
		t.Fatal(err)
	}
	if s.ShowAlert || !s.AutoKill {
		t.Fatalf("show_alert=%v auto_kill=%v", s.ShowAlert, s.AutoKill)
	}
	s, err = f.service.Toggle(settings.ShowAlert)
	if err != nil {
		t.Fatal(err)
	}
	if !s.ShowAlert || s.AutoKill {
		t.Fatalf("show_alert=%v auto_kill=%v", s.ShowAlert, s.AutoKill)
	}
}

func TestSleepDisablesItself(t *testing.T) {
	s := settings.Defaults()
	s.EnableSleep = true
	f := newFixture(t, s)

	f.table.set(3, watcher.ScreenCaptureAgent)
	if _, err := f.service.Cycle(); err != nil {
		t.Fatal(err)
	}

	if f.store.Current().EnableSleep {
		t.Fatal("sleep still enabled after firing")
	}
	onDisk, err := settings.Load(f.store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if onDisk.EnableSleep {
		t.Fatal("sleep disablement not persisted")
	}
	if len(f.changes) == 0 {
		t.Fatal("settings change not reported")
	}
}

func TestSyncAutostart(t *testing.T) {
	s := settings.Defaults()
	s.AutoStart = true
	f := newFixture(t, s)

	if err := f.service.SyncAutostart(); err != nil {
		t.Fatal(err)
	}
	if !f.autostart.enabled {
		t.Fatal("registration not enabled")
	}
	if err := f.service.SyncAutostart(); err != nil {
		t.Fatal(err)
	}
	if f.autostart.sets != 1 {
		t.Fatalf("registration written %d times, want 1", f.autostart.sets)
	}
}

func TestStartStop(t *testing.T) {
	s := settings.Defaults()
	s.CheckInterval = settings.MinCheckInterval
	f := newFixture(t, s)

	changed := make(chan watcher.States, 8)
	f.service.onStateChanged = func(states watcher.States) { changed <- states }

	if err := f.service.Start(); err != nil {
		t.Fatal(err)
	}
	if err := f.service.Start(); !errors.Is(err, ErrRunning) {
		t.Fatalf("second start: got %v, want ErrRunning", err)
	}

	f.table.set(5, watcher.RemoteDesktopAgent)
	select {
	case states := <-changed:
		if !states.Running(watcher.RemoteDesktopAgent) {
			t.Fatalf("unexpected states: %+v", states)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not detect the process")
	}

	f.service.Stop()
	f.service.Stop()
}
