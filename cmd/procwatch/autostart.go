package main

import (
	"errors"
	"fmt"

	"github.com/scjalliance/procwatch/osaction"
	"github.com/scjalliance/procwatch/settings"
)

func autostart(conf Config, enabled bool) error {
	err := setAutostart(conf, osaction.Autostart{}, enabled)
	if errors.Is(err, osaction.ErrAccessDenied) && !osaction.IsElevated() {
		fmt.Printf("Access denied, requesting elevation.\n")
		return osaction.Relaunch("--settings", conf.SettingsPath, "autostart", onOff(enabled))
	}
	if err != nil {
		return err
	}
	fmt.Printf("Autostart turned %s.\n", onOff(enabled))
	return nil
}

func uninstall(conf Config) error {
	if err := setAutostart(conf, osaction.Autostart{}, false); err != nil {
		return err
	}
	fmt.Printf("%s will no longer start when you sign in.\n", ProgramName)
	return nil
}

// setAutostart updates the autostart registration and records the choice in
// the settings file. A running watcher picks up the change through its
// settings file watch.
func setAutostart(conf Config, reg osaction.Autostart, enabled bool) error {
	if err := reg.Set(enabled); err != nil {
		return fmt.Errorf("unable to change autostart registration: %w", err)
	}

	store, err := settings.OpenStore(conf.SettingsPath, nil)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	if _, err := store.SetField(settings.AutoStart, enabled); err != nil {
		return err
	}
	return nil
}
