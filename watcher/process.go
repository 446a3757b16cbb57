// Package watcher tracks whether a set of watched executables are running.
package watcher

import "strings"

// Severity ranks watched processes.
type Severity int

// Severity levels.
const (
	Normal Severity = iota
	High
)

// Hotkey chords sent when a watched process starts or stops.
const (
	ShowDesktop     = "ctrl+windows+d"
	CloseDesktop    = "ctrl+windows+f4"
	PreviousDesktop = "ctrl+windows+left"
)

// Well-known executable names.
const (
	RemoteDesktopAgent = "rtcRemoteDesktop.exe"
	ScreenCaptureAgent = "screenCapture.exe"
)

// Process describes an executable that is watched for presence.
type Process struct {
	Name     string   // Executable name, compared case-insensitively
	Started  string   // Hotkey chord sent when the process starts
	Stopped  string   // Hotkey chord sent when the process stops
	Severity Severity
}

// Matches returns true if name refers to the same executable as p.
func (p Process) Matches(name string) bool {
	return strings.EqualFold(p.Name, name)
}

// NewProcess returns a normal severity process with the default hotkeys.
func NewProcess(name string) Process {
	return Process{
		Name:    name,
		Started: ShowDesktop,
		Stopped: CloseDesktop,
	}
}

// DefaultProcesses returns the processes that are watched by default.
func DefaultProcesses() []Process {
	rtc := NewProcess(RemoteDesktopAgent)
	rtc.Severity = High
	return []Process{
		rtc,
		NewProcess(ScreenCaptureAgent),
	}
}
