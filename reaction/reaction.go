// Package reaction applies the configured countermeasures when a watched
// process starts or stops.
package reaction

import (
	"strings"
	"time"

	"github.com/scjalliance/procwatch/settings"
)

// Actions performs operating system actions on behalf of the dispatcher.
type Actions interface {
	SendHotkey(chord string) error
	Terminate(name string) error
	MediaPauseToggle() error
	MuteToggle() error
	Sleep() error
}

// NoticeKind identifies the purpose of a notice.
type NoticeKind int

// Notice kinds.
const (
	Alert NoticeKind = iota
	Info
	Warning
)

// Notice is a message for the user.
type Notice struct {
	Kind     NoticeKind
	Title    string
	Message  string
	Duration time.Duration // How long an alert stays visible
	Topmost  bool          // Keep an alert above other windows
}

// Notifier delivers notices to the user.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc is a function that implements Notifier.
type NotifierFunc func(Notice)

// Notify calls f(notice).
func (f NotifierFunc) Notify(notice Notice) {
	f(notice)
}

// Settings provides access to the current settings.
type Settings interface {
	Current() settings.Settings
	Update(func(*settings.Settings)) (settings.Settings, error)
}

// Marker records a watched process as stopped.
type Marker interface {
	MarkStopped(name string)
}

// Reaction identifies a countermeasure.
type Reaction int

// Reactions, in the order they are applied.
const (
	AlertReaction Reaction = iota
	HotkeyReaction
	KillReaction
	PauseReaction
	MuteReaction
	SleepReaction
)

// String returns a string representation of the reaction.
func (r Reaction) String() string {
	switch r {
	case AlertReaction:
		return "alert"
	case HotkeyReaction:
		return "hotkey"
	case KillReaction:
		return "kill"
	case PauseReaction:
		return "pause"
	case MuteReaction:
		return "mute"
	case SleepReaction:
		return "sleep"
	default:
		return "unknown"
	}
}

// Outcome describes what happened while reacting to a transition.
type Outcome struct {
	Fired  []Reaction
	Errors []error
}

// Has returns true if r fired.
func (o Outcome) Has(r Reaction) bool {
	for _, fired := range o.Fired {
		if fired == r {
			return true
		}
	}
	return false
}

// String returns a comma-separated list of the reactions that fired.
func (o Outcome) String() string {
	names := make([]string, len(o.Fired))
	for i, r := range o.Fired {
		names[i] = r.String()
	}
	return strings.Join(names, ",")
}

func (o *Outcome) fire(r Reaction) {
	o.Fired = append(o.Fired, r)
}

func (o *Outcome) fail(err error) {
	o.Errors = append(o.Errors, err)
}
