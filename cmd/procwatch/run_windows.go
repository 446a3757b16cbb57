//go:build windows
// +build windows

package main

import (
	"context"
	"errors"

	"github.com/scjalliance/procwatch/monitor"
	"github.com/scjalliance/procwatch/osaction"
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/trayui"
)

func run(ctx context.Context, exit func(), conf Config) error {
	instance, err := osaction.AcquireInstance()
	if err != nil {
		if errors.Is(err, osaction.ErrAlreadyRunning) {
			msgBox(ProgramName, "The process watcher is already running.")
			return nil
		}
		return err
	}
	defer instance.Release()

	if err := ensureDir(conf); err != nil {
		return err
	}

	logger, closer := newLogger(conf, false)
	defer closer.Close()

	logf(logger, "Starting %s %s", ProgramName, Version)

	var a *agent

	tray := trayui.NewTray(ProgramName, Version, trayui.Handlers{
		Toggle: func(f settings.Field) (settings.Settings, error) {
			if a == nil {
				return settings.Settings{}, errors.New("the watcher is not running")
			}
			return a.service.Toggle(f)
		},
		SetTiming: func(interval float64, duration int) (settings.Settings, error) {
			if a == nil {
				return settings.Settings{}, errors.New("the watcher is not running")
			}
			return a.service.SetTiming(interval, duration)
		},
		Exit: exit,
	}, logger)

	// Fall back to desktop notifications if the tray can't be created
	var notifier reaction.Notifier = tray
	trayRunning := true
	if err := tray.Start(monitor.Status{Settings: settings.Defaults()}); err != nil {
		logf(logger, "Unable to start tray: %v", err)
		notifier = trayui.NewDesktop(ProgramName, logger)
		trayRunning = false
	}

	a = newAgent(conf, logger, notifier, tray.Update)
	if trayRunning {
		tray.Update(a.service.Status())
	}

	if err := a.Start(ctx); err != nil {
		if trayRunning {
			tray.Stop()
		}
		return err
	}

	<-ctx.Done()

	logf(logger, "Stopping")
	a.Stop()
	if trayRunning {
		tray.Stop()
	}

	return nil
}
