package main

import (
	"path/filepath"

	"github.com/scjalliance/procwatch/watcher"
)

// Well-known names within the settings directory.
const (
	HistoryFileName = "history.db"
	LogFileName     = "procwatch.log"
)

// Config holds the options shared by the commands.
type Config struct {
	SettingsPath string
	Watch        []string
	Debug        bool
	StatHat      string
}

// Dir returns the directory that holds the settings file, the log and the
// history database.
func (conf Config) Dir() string {
	return filepath.Dir(conf.SettingsPath)
}

// HistoryPath returns the path of the history database.
func (conf Config) HistoryPath() string {
	return filepath.Join(conf.Dir(), HistoryFileName)
}

// LogPath returns the path of the log file.
func (conf Config) LogPath() string {
	return filepath.Join(conf.Dir(), LogFileName)
}

// Processes returns the default watched processes followed by any extra
// executables named on the command line.
func (conf Config) Processes() []watcher.Process {
	procs := watcher.DefaultProcesses()
	for _, name := range conf.Watch {
		if name == "" || watched(procs, name) {
			continue
		}
		procs = append(procs, watcher.NewProcess(name))
	}
	return procs
}

func watched(procs []watcher.Process, name string) bool {
	for _, proc := range procs {
		if proc.Matches(name) {
			return true
		}
	}
	return false
}
