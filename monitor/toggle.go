package monitor

import (
	"fmt"

	"github.com/scjalliance/procwatch/settings"
)

// Toggle flips a boolean setting and persists it.
//
// Turning autostart on or off updates the autostart registration first; if
// that fails the setting is left unchanged. Turning the sleep feature on or
// off starts a new sleep episode. Turning pause or mute off forgets its last
// known state.
func (s *Service) Toggle(f settings.Field) (settings.Settings, error) {
	current := s.store.Current()
	value := !current.Get(f)

	if f == settings.AutoStart && s.autostart != nil {
		if err := s.autostart.Set(value); err != nil {
			s.log("Unable to change autostart: %v", err)
			return current, fmt.Errorf("unable to change autostart: %w", err)
		}
	}

	updated, err := s.store.SetField(f, value)
	if err != nil {
		return updated, err
	}

	switch f {
	case settings.EnableSleep:
		s.dispatcher.ResetSleep()
	case settings.AutoPause:
		if !value {
			s.dispatcher.ResetPause()
		}
	case settings.AutoMute:
		if !value {
			s.dispatcher.ResetMute()
		}
	}

	s.debug("%s is now %t", f, value)
	s.settingsChanged(updated)

	return updated, nil
}

// SetTiming validates and persists the check interval and alert duration.
// The polling loop picks up a new interval on its next cycle.
func (s *Service) SetTiming(interval float64, duration int) (settings.Settings, error) {
	updated, err := s.store.SetTiming(interval, duration)
	if err != nil {
		return updated, err
	}
	s.settingsChanged(updated)
	return updated, nil
}

// SyncAutostart makes the autostart registration agree with the settings.
func (s *Service) SyncAutostart() error {
	if s.autostart == nil {
		return nil
	}

	want := s.store.Current().AutoStart
	enabled, err := s.autostart.Enabled()
	if err == nil && enabled == want {
		return nil
	}

	if err := s.autostart.Set(want); err != nil {
		return fmt.Errorf("unable to synchronize autostart: %w", err)
	}
	s.log("Autostart registration set to %t", want)
	return nil
}

// SettingsChanged informs the monitor that the settings were changed
// outside of it, for instance by editing the settings file.
func (s *Service) SettingsChanged(updated settings.Settings) {
	s.settingsChanged(updated)
}

func (s *Service) settingsChanged(updated settings.Settings) {
	if s.onSettingsChanged != nil {
		s.onSettingsChanged(updated)
	}
}

// settingsView exposes the settings store to the dispatcher and reports
// changes made by reactions.
type settingsView struct {
	s *Service
}

func (v settingsView) Current() settings.Settings {
	return v.s.store.Current()
}

func (v settingsView) Update(fn func(*settings.Settings)) (settings.Settings, error) {
	updated, err := v.s.store.Update(fn)
	if err != nil {
		return updated, err
	}
	v.s.settingsChanged(updated)
	return updated, nil
}
