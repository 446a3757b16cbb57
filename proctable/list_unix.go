//go:build !windows
// +build !windows

package proctable

import (
	ps "github.com/mitchellh/go-ps"
	"github.com/scjalliance/procwatch/watcher"
)

func list() ([]watcher.Entry, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	entries := make([]watcher.Entry, 0, len(procs))
	for _, proc := range procs {
		entries = append(entries, watcher.Entry{
			PID:  proc.Pid(),
			Name: proc.Executable(),
		})
	}
	return entries, nil
}
