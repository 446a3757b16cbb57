//go:build windows
// +build windows

package proctable

import (
	"github.com/gentlemanautomaton/winproc"
	"github.com/scjalliance/procwatch/watcher"
)

func list() ([]watcher.Entry, error) {
	procs, err := winproc.List()
	if err != nil {
		return nil, err
	}

	entries := make([]watcher.Entry, 0, len(procs))
	for _, proc := range procs {
		entries = append(entries, watcher.Entry{
			PID:  int(proc.ID),
			Name: proc.Name,
		})
	}
	return entries, nil
}
