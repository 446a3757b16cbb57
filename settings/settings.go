// Package settings loads, stores and persists the watcher configuration.
package settings

import (
	"errors"
	"fmt"
	"time"
)

// Bounds for the numeric settings.
const (
	MinCheckInterval = 0.02
	MaxCheckInterval = 10.0
	MinAlertDuration = 1
	MaxAlertDuration = 30

	DefaultCheckInterval = 0.25
	DefaultAlertDuration = 3
)

// ErrInvalid is returned when a setting is outside of its valid range.
var ErrInvalid = errors.New("invalid setting")

// Settings is the persisted configuration of the watcher.
type Settings struct {
	AutoStart        bool    `json:"auto_start"`
	ShowAlert        bool    `json:"show_alert"`
	AlertOnTop       bool    `json:"alert_on_top"`
	EnableHotkey     bool    `json:"enable_hotkey"`
	EnableSleep      bool    `json:"enable_sleep"`
	AutoPause        bool    `json:"auto_pause"`
	AutoMute         bool    `json:"auto_mute"`
	AutoKill         bool    `json:"auto_kill"`
	OnlyRTCEffective bool    `json:"only_rtc_effective"`
	CheckInterval    float64 `json:"check_interval"`
	AlertDuration    int     `json:"alert_duration"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		CheckInterval: DefaultCheckInterval,
		AlertDuration: DefaultAlertDuration,
	}
}

// Clamp returns a copy of s with its numeric values forced into range.
func (s Settings) Clamp() Settings {
	switch {
	case s.CheckInterval < MinCheckInterval:
		s.CheckInterval = MinCheckInterval
	case s.CheckInterval > MaxCheckInterval:
		s.CheckInterval = MaxCheckInterval
	}
	switch {
	case s.AlertDuration < MinAlertDuration:
		s.AlertDuration = MinAlertDuration
	case s.AlertDuration > MaxAlertDuration:
		s.AlertDuration = MaxAlertDuration
	}
	return s
}

// Validate returns an error if any numeric value is out of range.
func (s Settings) Validate() error {
	if err := ValidateInterval(s.CheckInterval); err != nil {
		return err
	}
	return ValidateAlertDuration(s.AlertDuration)
}

// ValidateInterval returns an error if seconds is not a valid check interval.
func ValidateInterval(seconds float64) error {
	if seconds < MinCheckInterval || seconds > MaxCheckInterval {
		return fmt.Errorf("%w: check interval must be between %g and %g seconds", ErrInvalid, MinCheckInterval, MaxCheckInterval)
	}
	return nil
}

// ValidateAlertDuration returns an error if seconds is not a valid alert
// duration.
func ValidateAlertDuration(seconds int) error {
	if seconds < MinAlertDuration || seconds > MaxAlertDuration {
		return fmt.Errorf("%w: alert duration must be between %d and %d seconds", ErrInvalid, MinAlertDuration, MaxAlertDuration)
	}
	return nil
}

// Interval returns the clamped check interval.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.Clamp().CheckInterval * float64(time.Second))
}

// AlertTime returns the clamped alert duration.
func (s Settings) AlertTime() time.Duration {
	return time.Duration(s.Clamp().AlertDuration) * time.Second
}

// Exclusive returns a copy of s in which show_alert and auto_kill are not
// both enabled. The alert is kept.
func (s Settings) Exclusive() Settings {
	if s.ShowAlert && s.AutoKill {
		s.AutoKill = false
	}
	return s
}
