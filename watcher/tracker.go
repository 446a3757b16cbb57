package watcher

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Tracker polls a process table and reports changes in the running state of
// a fixed set of watched processes.
//
// For each watched process the tracker keeps a cache of process IDs that
// were found running under its name. Cached IDs are verified on every poll
// and a verified ID saves the tracker from scanning the full process table.
type Tracker struct {
	table Table
	now   func() time.Time

	mutex sync.Mutex
	procs []Process
	state []bool
	cache []map[int]struct{}
	scans uint64
}

// NewTracker returns a tracker for the given processes. Every process is
// initially considered stopped.
func NewTracker(table Table, procs ...Process) *Tracker {
	t := &Tracker{
		table: table,
		now:   time.Now,
		procs: make([]Process, len(procs)),
		state: make([]bool, len(procs)),
		cache: make([]map[int]struct{}, len(procs)),
	}
	copy(t.procs, procs)
	for i := range t.cache {
		t.cache[i] = make(map[int]struct{})
	}
	return t
}

// Processes returns the watched processes.
func (t *Tracker) Processes() []Process {
	out := make([]Process, len(t.procs))
	copy(out, t.procs)
	return out
}

// Poll queries the process table and returns a transition for each watched
// process whose running state changed since the previous poll.
//
// Transitions are returned in the order the processes were declared. If the
// process table cannot be listed no state is changed and the error is
// returned.
func (t *Tracker) Poll() ([]Transition, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	var (
		scanned bool
		entries []Entry
	)

	current := make([]bool, len(t.procs))
	found := make([][]int, len(t.procs))

	for i, proc := range t.procs {
		if t.verify(i) {
			current[i] = true
			continue
		}

		// Only list the full process table once per cycle
		if !scanned {
			var err error
			entries, err = t.table.All()
			if err != nil {
				return nil, fmt.Errorf("failed to list processes: %w", err)
			}
			scanned = true
			t.scans++
		}

		for _, entry := range entries {
			if proc.Matches(entry.Name) {
				found[i] = append(found[i], entry.PID)
			}
		}
		current[i] = len(found[i]) > 0
	}

	// Commit the results of the cycle
	now := t.now()
	var transitions []Transition
	for i, proc := range t.procs {
		for _, pid := range found[i] {
			t.cache[i][pid] = struct{}{}
		}
		if current[i] == t.state[i] {
			continue
		}
		transitions = append(transitions, Transition{
			Process:  proc,
			Previous: t.state[i],
			Running:  current[i],
			Time:     now,
		})
		t.state[i] = current[i]
	}

	return transitions, nil
}

// verify checks the cached process IDs for the process at index i. IDs that
// no longer belong to a live process with a matching name are purged. It
// returns true if at least one cached ID was confirmed.
func (t *Tracker) verify(i int) (confirmed bool) {
	proc := t.procs[i]
	for pid := range t.cache[i] {
		name, alive, err := t.table.Lookup(pid)
		if err != nil || !alive || !proc.Matches(name) {
			delete(t.cache[i], pid)
			continue
		}
		confirmed = true
	}
	return confirmed
}

// MarkStopped records the named process as stopped and forgets its cached
// process IDs. The next poll reports a transition if it is found running.
func (t *Tracker) MarkStopped(name string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i, proc := range t.procs {
		if proc.Matches(name) {
			t.state[i] = false
			t.cache[i] = make(map[int]struct{})
		}
	}
}

// States returns the running state of every watched process as of the most
// recently completed poll.
func (t *Tracker) States() States {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	out := make(States, len(t.procs))
	for i, proc := range t.procs {
		out[i] = State{Process: proc, Running: t.state[i]}
	}
	return out
}

// Cached returns the process IDs currently cached for the named process.
func (t *Tracker) Cached(name string) []int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i, proc := range t.procs {
		if strings.EqualFold(proc.Name, name) {
			out := make([]int, 0, len(t.cache[i]))
			for pid := range t.cache[i] {
				out = append(out, pid)
			}
			return out
		}
	}
	return nil
}

// Scans returns the number of times the full process table has been listed.
func (t *Tracker) Scans() uint64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.scans
}
