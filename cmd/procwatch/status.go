package main

import (
	"fmt"
	"os"

	"github.com/scjalliance/procwatch/osaction"
	"github.com/scjalliance/procwatch/proctable"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/trayui"
	"github.com/scjalliance/procwatch/watcher"
)

func status(conf Config) error {
	s, err := settings.Load(conf.SettingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	tracker := watcher.NewTracker(proctable.System{}, conf.Processes()...)
	if _, err := tracker.Poll(); err != nil {
		return fmt.Errorf("unable to list processes: %w", err)
	}

	fmt.Printf("%s %s\n", ProgramName, Version)
	fmt.Printf("Settings file: %s\n\n", conf.SettingsPath)
	fmt.Print(trayui.StatusText(s, tracker.States()))

	switch enabled, err := (osaction.Autostart{}).Enabled(); {
	case err != nil:
		fmt.Printf("\nAutostart registration: unknown (%v)\n", err)
	case enabled:
		fmt.Printf("\nAutostart registration: present\n")
	default:
		fmt.Printf("\nAutostart registration: absent\n")
	}

	printSessions()

	return nil
}
