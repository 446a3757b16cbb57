package monitor

import "errors"

var (
	// ErrRunning is returned when a start action is taken on a monitor that
	// is already running.
	ErrRunning = errors.New("the monitor is already running")
)
