// Package osaction performs the operating system actions used as reactions:
// hotkeys, media keys, termination and sleep. It also manages autostart
// registration, elevation and single instance enforcement.
package osaction

import (
	"errors"

	"github.com/scjalliance/procwatch/reaction"
)

var (
	// ErrUnsupported is returned when an action is not available on the
	// current platform.
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrAccessDenied is returned when an action requires privileges that
	// the current process lacks.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyRunning is returned when another instance holds the single
	// instance lock.
	ErrAlreadyRunning = errors.New("another instance is already running")
)

// System performs actions on the local machine.
type System struct{}

// SendHotkey presses and releases the keys of chord, such as
// "ctrl+windows+d".
func (System) SendHotkey(chord string) error {
	c, err := ParseChord(chord)
	if err != nil {
		return err
	}
	return sendChord(c)
}

// Terminate forcefully terminates every process with the given executable
// name.
func (System) Terminate(name string) error {
	return terminate(name)
}

// MediaPauseToggle presses the media play/pause key.
func (System) MediaPauseToggle() error {
	return sendMediaKey(mediaPlayPause)
}

// MuteToggle presses the volume mute key.
func (System) MuteToggle() error {
	return sendMediaKey(volumeMute)
}

// Sleep suspends the system.
func (System) Sleep() error {
	return sleep()
}

var _ reaction.Actions = System{}

type mediaKey int

const (
	mediaPlayPause mediaKey = iota
	volumeMute
)
