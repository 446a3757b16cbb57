// Package event defines the log events produced while watching processes.
package event

import "fmt"

// Event is an event that can be logged.
type Event interface {
	ID() uint32
	IsDebug() bool
	String() string
}

// Event IDs.
const (
	MonitorEventID  = 100
	SettingsEventID = 200
	ReactionEventID = 300
	UIEventID       = 400
)

// Monitor is an event originating from the polling loop.
type Monitor struct {
	Msg   string
	Debug bool
}

// ID returns the ID of the event.
func (e Monitor) ID() uint32 {
	return MonitorEventID
}

// IsDebug returns true if the event is intended for development and
// debugging.
func (e Monitor) IsDebug() bool {
	return e.Debug
}

// String returns a string representation of the event.
func (e Monitor) String() string {
	return fmt.Sprintf("[MONITOR] %s", e.Msg)
}

// Settings is an event originating from settings management.
type Settings struct {
	Path  string
	Msg   string
	Debug bool
}

// ID returns the ID of the event.
func (e Settings) ID() uint32 {
	return SettingsEventID
}

// IsDebug returns true if the event is intended for development and
// debugging.
func (e Settings) IsDebug() bool {
	return e.Debug
}

// String returns a string representation of the event.
func (e Settings) String() string {
	if e.Path == "" {
		return fmt.Sprintf("[SETTINGS] %s", e.Msg)
	}
	return fmt.Sprintf("[SETTINGS] %s: %s", e.Path, e.Msg)
}

// Reaction is an event originating from reaction dispatch.
type Reaction struct {
	ProcessName string
	Msg         string
	Debug       bool
}

// ID returns the ID of the event.
func (e Reaction) ID() uint32 {
	return ReactionEventID
}

// IsDebug returns true if the event is intended for development and
// debugging.
func (e Reaction) IsDebug() bool {
	return e.Debug
}

// String returns a string representation of the event.
func (e Reaction) String() string {
	return fmt.Sprintf("[REACTION] %s: %s", e.ProcessName, e.Msg)
}

// UI is an event originating from the user interface.
type UI struct {
	Msg   string
	Debug bool
}

// ID returns the ID of the event.
func (e UI) ID() uint32 {
	return UIEventID
}

// IsDebug returns true if the event is intended for development and
// debugging.
func (e UI) IsDebug() bool {
	return e.Debug
}

// String returns a string representation of the event.
func (e UI) String() string {
	return fmt.Sprintf("[UI] %s", e.Msg)
}
