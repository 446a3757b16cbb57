//go:build !windows
// +build !windows

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/scjalliance/procwatch/monitor"
	"github.com/scjalliance/procwatch/osaction"
	"github.com/scjalliance/procwatch/trayui"
)

func run(ctx context.Context, exit func(), conf Config) error {
	instance, err := osaction.AcquireInstance()
	if err != nil {
		if errors.Is(err, osaction.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, "The process watcher is already running.")
			return nil
		}
		return err
	}
	defer instance.Release()

	if err := ensureDir(conf); err != nil {
		return err
	}

	logger, closer := newLogger(conf, true)
	defer closer.Close()

	logf(logger, "Starting %s %s", ProgramName, Version)

	notifier := trayui.NewDesktop(ProgramName, logger)
	a := newAgent(conf, logger, notifier, func(status monitor.Status) {
		logf(logger, "%s", trayui.ToolTip(status.States))
	})

	if err := a.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	logf(logger, "Stopping")
	a.Stop()

	return nil
}

