package monitor

import (
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

// Record describes a transition and the reactions it caused.
type Record struct {
	Transition watcher.Transition
	States     watcher.States // States after the reactions were applied
	Outcome    reaction.Outcome
}

// Recorder receives a record of every transition.
type Recorder interface {
	Record(Record) error
}

// Autostart controls whether the program starts when the user signs in.
type Autostart interface {
	Enabled() (bool, error)
	Set(enabled bool) error
}

// Status is a snapshot of the monitor.
type Status struct {
	Settings settings.Settings
	States   watcher.States
}
