// Package trayui presents the watcher in the system tray.
//
// The menu, icon and status text are produced by pure render functions from
// the current settings and process states. The platform specific tray only
// displays what they return.
package trayui
