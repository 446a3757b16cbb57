package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/history"
	"github.com/scjalliance/procwatch/monitor"
	"github.com/scjalliance/procwatch/osaction"
	"github.com/scjalliance/procwatch/proctable"
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

// HistoryRetention is how long journaled transitions are kept.
const HistoryRetention = 30 * 24 * time.Hour

// agent bundles the components of a running watcher.
type agent struct {
	conf    Config
	store   *settings.Store
	journal *history.Journal
	service *monitor.Service
	logger  event.Logger
}

// newAgent prepares a watcher that delivers notices to notifier and calls
// update whenever the settings or process states change.
func newAgent(conf Config, logger event.Logger, notifier reaction.Notifier, update func(monitor.Status)) *agent {
	a := &agent{
		conf:   conf,
		logger: logger,
	}

	// A store with defaults is returned even when the file can't be read
	var err error
	a.store, err = settings.OpenStore(conf.SettingsPath, logger)
	if err != nil && notifier != nil {
		notifier.Notify(reaction.Notice{
			Kind:    reaction.Warning,
			Title:   "Settings not loaded",
			Message: fmt.Sprintf("Using default settings: %v", err),
		})
	}

	var recorders []monitor.Recorder
	if journal, err := history.Open(conf.HistoryPath()); err != nil {
		logf(logger, "History is unavailable: %v", err)
	} else {
		a.journal = journal
		recorders = append(recorders, journal)
		if removed, err := journal.Prune(time.Now().Add(-HistoryRetention)); err != nil {
			logf(logger, "Unable to prune history: %v", err)
		} else if removed > 0 {
			logf(logger, "Pruned %d history entries", removed)
		}
	}
	if conf.StatHat != "" {
		recorders = append(recorders, NewStatHatRecipient("procwatch", conf.StatHat, logger))
	}

	changed := func() {
		if update != nil && a.service != nil {
			update(a.service.Status())
		}
	}

	a.service = monitor.New(monitor.Config{
		Settings:  a.store,
		Table:     proctable.System{},
		Processes: conf.Processes(),
		Actions:   osaction.System{},
		Notifier:  notifier,
		Autostart: osaction.Autostart{},
		Recorders: recorders,
		Logger:    logger,
		OnSettingsChanged: func(settings.Settings) {
			changed()
		},
		OnStateChanged: func(watcher.States) {
			changed()
		},
	})

	return a
}

// Start synchronizes the autostart registration, starts the polling loop
// and watches the settings file for changes until ctx is cancelled.
func (a *agent) Start(ctx context.Context) error {
	a.syncAutostart()

	if err := a.service.Start(); err != nil {
		return err
	}

	if err := a.store.Watch(ctx, a.service.SettingsChanged); err != nil {
		logf(a.logger, "Unable to watch settings file: %v", err)
	}

	return nil
}

// Stop stops the polling loop and closes the journal.
func (a *agent) Stop() {
	a.service.Stop()
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			logf(a.logger, "Unable to close history: %v", err)
		}
	}
}

// syncAutostart makes the autostart registration agree with the settings.
// If the registry refuses the change an elevated instance is asked to make
// it.
func (a *agent) syncAutostart() {
	err := a.service.SyncAutostart()
	if err == nil {
		return
	}
	logf(a.logger, "%v", err)

	if !errors.Is(err, osaction.ErrAccessDenied) || osaction.IsElevated() {
		return
	}

	state := onOff(a.store.Current().AutoStart)
	if err := osaction.Relaunch("--settings", a.conf.SettingsPath, "autostart", state); err != nil {
		logf(a.logger, "Unable to request elevation: %v", err)
		return
	}
	logf(a.logger, "Requested elevation to turn autostart %s", state)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// ensureDir creates the settings directory if it doesn't exist.
func ensureDir(conf Config) error {
	return os.MkdirAll(conf.Dir(), 0o755)
}
