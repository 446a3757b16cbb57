// Package monitor runs the polling loop that watches for processes and
// dispatches reactions when they start or stop.
//
// The monitor is also the boundary through which the user interface changes
// settings, so that side effects of a change, such as updating the autostart
// registration or starting a new sleep episode, happen in one place.
package monitor
