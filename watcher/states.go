package watcher

import "time"

// Transition is a change in the running state of a watched process between
// two consecutive polls.
type Transition struct {
	Process  Process
	Previous bool
	Running  bool
	Time     time.Time
}

// State is the running state of a single watched process.
type State struct {
	Process Process
	Running bool
}

// States is a snapshot of the running state of every watched process, in
// the order the processes were declared.
type States []State

// Running returns true if the named process is running.
func (s States) Running(name string) bool {
	for _, state := range s {
		if state.Process.Matches(name) {
			return state.Running
		}
	}
	return false
}

// Any returns true if at least one process is running.
func (s States) Any() bool {
	for _, state := range s {
		if state.Running {
			return true
		}
	}
	return false
}

// AnyOf returns true if at least one process with the given severity is
// running.
func (s States) AnyOf(severity Severity) bool {
	for _, state := range s {
		if state.Running && state.Process.Severity == severity {
			return true
		}
	}
	return false
}

// With returns a copy of s with the named process set to running.
func (s States) With(name string, running bool) States {
	out := make(States, len(s))
	copy(out, s)
	for i := range out {
		if out[i].Process.Matches(name) {
			out[i].Running = running
		}
	}
	return out
}
