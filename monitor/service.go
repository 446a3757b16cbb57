package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

// Floor is the fixed pause after every cycle. It bounds CPU usage no matter
// how short the configured interval is.
const Floor = 20 * time.Millisecond

// Config holds the configuration and collaborators of a monitor.
type Config struct {
	Settings  *settings.Store
	Table     watcher.Table
	Processes []watcher.Process
	Actions   reaction.Actions
	Notifier  reaction.Notifier
	Autostart Autostart // Optional
	Recorders []Recorder
	Logger    event.Logger

	// OnSettingsChanged is called after every settings change made through
	// the monitor or by a reaction.
	OnSettingsChanged func(settings.Settings)

	// OnStateChanged is called after a cycle that produced transitions.
	OnStateChanged func(watcher.States)
}

// Service watches the local process table on an interval and reacts when a
// watched process starts or stops.
type Service struct {
	store             *settings.Store
	tracker           *watcher.Tracker
	dispatcher        *reaction.Dispatcher
	notifier          reaction.Notifier
	autostart         Autostart
	recorders         []Recorder
	logger            event.Logger
	onSettingsChanged func(settings.Settings)
	onStateChanged    func(watcher.States)

	failing bool // The previous poll failed; only touched by the polling goroutine

	opMutex  sync.Mutex
	shutdown chan<- struct{} // Close to signal shutdown
	stopped  <-chan struct{} // Closed when shutdown completed
}

// New returns a new monitor with the given configuration.
func New(cfg Config) *Service {
	procs := cfg.Processes
	if len(procs) == 0 {
		procs = watcher.DefaultProcesses()
	}

	s := &Service{
		store:             cfg.Settings,
		tracker:           watcher.NewTracker(cfg.Table, procs...),
		notifier:          cfg.Notifier,
		autostart:         cfg.Autostart,
		recorders:         cfg.Recorders,
		logger:            cfg.Logger,
		onSettingsChanged: cfg.OnSettingsChanged,
		onStateChanged:    cfg.OnStateChanged,
	}

	s.dispatcher = reaction.New(reaction.Config{
		Settings: settingsView{s},
		Actions:  cfg.Actions,
		Notifier: cfg.Notifier,
		Marker:   s.tracker,
		Logger:   cfg.Logger,
	})

	return s
}

// Start starts the monitor if it isn't running.
func (s *Service) Start() error {
	s.opMutex.Lock()
	defer s.opMutex.Unlock()

	if s.shutdown != nil {
		return ErrRunning
	}

	shutdown := make(chan struct{})
	s.shutdown = shutdown

	stopped := make(chan struct{})
	s.stopped = stopped

	go s.run(shutdown, stopped)

	return nil
}

// Stop stops the monitor if it's running. It waits for the current cycle to
// finish.
func (s *Service) Stop() {
	s.opMutex.Lock()
	defer s.opMutex.Unlock()

	if s.shutdown == nil {
		return
	}

	close(s.shutdown)
	s.shutdown = nil

	<-s.stopped
	s.stopped = nil
}

func (s *Service) run(shutdown <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	s.log("Started watching %d processes", len(s.tracker.Processes()))
	defer s.log("Stopped")

	timer := time.NewTimer(s.store.Current().Interval())
	defer timer.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-timer.C:
		}

		s.poll()

		// Always rest for a moment, even if the interval is tiny
		select {
		case <-shutdown:
			return
		case <-time.After(Floor):
		}

		// Pick up interval changes on every cycle
		timer.Reset(s.store.Current().Interval())
	}
}

// poll runs a single cycle. A panic during the cycle is reported and the
// polling loop carries on with the next one.
func (s *Service) poll() {
	defer func() {
		if r := recover(); r != nil {
			s.log("Cycle failed: %v", r)
			s.notify(reaction.Notice{
				Kind:    reaction.Warning,
				Title:   "Monitoring error",
				Message: fmt.Sprint(r),
			})
		}
	}()
	s.Cycle()
}

// Cycle performs a single poll of the process table and dispatches
// reactions for every transition it produced. Sleep is then evaluated
// against the resulting states, even when nothing changed.
//
// Cycle is called by the polling loop and must not be called concurrently
// with a running monitor.
func (s *Service) Cycle() ([]watcher.Transition, error) {
	transitions, err := s.tracker.Poll()
	if err != nil {
		if !s.failing {
			s.failing = true
			s.log("Poll failed: %v", err)
			s.notify(reaction.Notice{
				Kind:    reaction.Warning,
				Title:   "Monitoring error",
				Message: err.Error(),
			})
		} else {
			s.debug("Poll failed: %v", err)
		}
		return nil, err
	}

	if s.failing {
		s.failing = false
		s.log("Polling recovered")
	}

	for _, t := range transitions {
		s.debug("%s running=%t", t.Process.Name, t.Running)
		outcome := s.dispatcher.Dispatch(t, s.tracker.States())
		s.record(Record{
			Transition: t,
			States:     s.tracker.States(),
			Outcome:    outcome,
		})
	}

	s.dispatcher.Settle(s.tracker.States())

	if len(transitions) > 0 && s.onStateChanged != nil {
		s.onStateChanged(s.tracker.States())
	}

	return transitions, nil
}

func (s *Service) record(r Record) {
	for _, recorder := range s.recorders {
		if err := recorder.Record(r); err != nil {
			s.log("Unable to record transition of %s: %v", r.Transition.Process.Name, err)
		}
	}
}

// Status returns the current settings and process states.
func (s *Service) Status() Status {
	return Status{
		Settings: s.store.Current(),
		States:   s.tracker.States(),
	}
}

// Processes returns the watched processes.
func (s *Service) Processes() []watcher.Process {
	return s.tracker.Processes()
}

func (s *Service) notify(notice reaction.Notice) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(notice)
}

func (s *Service) log(format string, v ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Log(event.Monitor{
		Msg: fmt.Sprintf(format, v...),
	})
}

func (s *Service) debug(format string, v ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Log(event.Monitor{
		Msg:   fmt.Sprintf(format, v...),
		Debug: true,
	})
}
