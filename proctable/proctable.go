// Package proctable provides access to the operating system's process table.
package proctable

import (
	"errors"

	ps "github.com/mitchellh/go-ps"
	"github.com/scjalliance/procwatch/watcher"
)

// ErrNotFound is returned when a process cannot be found.
var ErrNotFound = errors.New("process not found")

// System is the process table of the local machine.
type System struct{}

// All returns every process currently running.
func (System) All() ([]watcher.Entry, error) {
	return list()
}

// Lookup returns the executable name of the process with the given ID.
func (System) Lookup(pid int) (name string, alive bool, err error) {
	proc, err := ps.FindProcess(pid)
	if err != nil {
		return "", false, err
	}
	if proc == nil {
		return "", false, ErrNotFound
	}
	return proc.Executable(), true, nil
}

var _ watcher.Table = System{}
