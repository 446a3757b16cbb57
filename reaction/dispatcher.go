package reaction

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

// HotkeyDelay is the pause between the stop chord and the follow-up chord.
const HotkeyDelay = 200 * time.Millisecond

// Config holds the collaborators of a dispatcher.
type Config struct {
	Settings Settings
	Actions  Actions
	Notifier Notifier
	Marker   Marker // Optional
	Logger   event.Logger
}

// Dispatcher applies reactions to process transitions.
//
// Dispatch and Settle must only be called from a single goroutine.
// ResetSleep, ResetPause and ResetMute may be called from any goroutine.
type Dispatcher struct {
	settings Settings
	actions  Actions
	notifier Notifier
	marker   Marker
	logger   event.Logger
	wait     func(time.Duration)

	paused bool // Last known should-pause value
	muted  bool // Last known should-mute value
	slept  bool // Sleep has fired during the current episode

	resetSleep atomic.Bool
	resetPause atomic.Bool
	resetMute  atomic.Bool
}

// New returns a new dispatcher.
func New(cfg Config) *Dispatcher {
	return &Dispatcher{
		settings: cfg.Settings,
		actions:  cfg.Actions,
		notifier: cfg.Notifier,
		marker:   cfg.Marker,
		logger:   cfg.Logger,
		wait:     time.Sleep,
	}
}

// ResetSleep begins a new sleep episode, allowing sleep to fire again.
func (d *Dispatcher) ResetSleep() {
	d.resetSleep.Store(true)
}

// ResetPause forgets the last known pause state.
func (d *Dispatcher) ResetPause() {
	d.resetPause.Store(true)
}

// ResetMute forgets the last known mute state.
func (d *Dispatcher) ResetMute() {
	d.resetMute.Store(true)
}

func (d *Dispatcher) applyResets() {
	if d.resetSleep.Swap(false) {
		d.slept = false
	}
	if d.resetPause.Swap(false) {
		d.paused = false
	}
	if d.resetMute.Swap(false) {
		d.muted = false
	}
}

// Dispatch applies the enabled reactions to transition t. The states
// describe every watched process after the poll that produced t.
//
// Reactions are applied in a fixed order: alert, hotkey, kill, pause and
// mute, then sleep. A failing reaction is reported and does not prevent the
// remaining reactions from running.
func (d *Dispatcher) Dispatch(t watcher.Transition, states watcher.States) (out Outcome) {
	d.applyResets()

	s := d.settings.Current()
	name := t.Process.Name
	states = states.With(name, t.Running)

	// 1. Alert
	if s.ShowAlert {
		d.alert(t, s)
		out.fire(AlertReaction)
	}

	// Everything else can be restricted to the high severity process
	if s.OnlyRTCEffective && t.Process.Severity != watcher.High {
		d.debug(name, "Outside of the effective scope")
		return
	}

	// 2. Hotkey
	if s.EnableHotkey {
		if err := d.hotkey(t); err != nil {
			d.report(&out, name, "Hotkey failed", err)
		} else {
			out.fire(HotkeyReaction)
		}
	}

	// 3. Kill
	if s.AutoKill && t.Running {
		if err := d.actions.Terminate(name); err != nil {
			d.report(&out, name, "Termination failed", fmt.Errorf("unable to terminate %s: %w", name, err))
		} else {
			d.log(name, "Terminated")
			out.fire(KillReaction)
			// A terminated process is stopped without a stop transition
			states = states.With(name, false)
			if d.marker != nil {
				d.marker.MarkStopped(name)
			}
		}
	}

	trigger := triggered(s, states)

	// 4. Pause and mute
	d.pause(&out, name, s, trigger)

	// 5. Sleep
	d.sleep(&out, name, s, trigger)

	return
}

// Settle evaluates sleep against states outside of a transition. It lets
// sleep fire when the feature is turned on while a watched process is
// already running. Settle is called once per poll.
func (d *Dispatcher) Settle(states watcher.States) (out Outcome) {
	d.applyResets()
	s := d.settings.Current()
	d.sleep(&out, "", s, triggered(s, states))
	return
}

// triggered reports whether the states call for pause, mute and sleep.
func triggered(s settings.Settings, states watcher.States) bool {
	if s.OnlyRTCEffective {
		return states.AnyOf(watcher.High)
	}
	return states.Any()
}

func (d *Dispatcher) alert(t watcher.Transition, s settings.Settings) {
	title, verb := "Process stopped", "stopped"
	if t.Running {
		title, verb = "Process started", "started"
	}
	d.notify(Notice{
		Kind:     Alert,
		Title:    title,
		Message:  fmt.Sprintf("%s has %s.", t.Process.Name, verb),
		Duration: s.AlertTime(),
		Topmost:  s.AlertOnTop,
	})
}

func (d *Dispatcher) hotkey(t watcher.Transition) error {
	if t.Running {
		return d.send(t.Process.Started)
	}
	if err := d.send(t.Process.Stopped); err != nil {
		return err
	}
	d.wait(HotkeyDelay)
	return d.send(watcher.PreviousDesktop)
}

func (d *Dispatcher) send(chord string) error {
	if chord == "" {
		return nil
	}
	if err := d.actions.SendHotkey(chord); err != nil {
		return fmt.Errorf("unable to send %s: %w", chord, err)
	}
	return nil
}

// pause toggles media playback and the mute state so that they follow the
// trigger. The toggles are edge-triggered because the operating system only
// offers toggle keys. Each state only changes when its toggle succeeds.
func (d *Dispatcher) pause(out *Outcome, name string, s settings.Settings, trigger bool) {
	if s.AutoPause && trigger != d.paused {
		if err := d.actions.MediaPauseToggle(); err != nil {
			d.report(out, name, "Media pause failed", err)
		} else {
			d.paused = trigger
			out.fire(PauseReaction)
			d.debug(name, "Pause state is now %t", trigger)
		}
	}
	if s.AutoMute && trigger != d.muted {
		if err := d.actions.MuteToggle(); err != nil {
			d.report(out, name, "Mute failed", err)
		} else {
			d.muted = trigger
			out.fire(MuteReaction)
			d.debug(name, "Mute state is now %t", trigger)
		}
	}
}

// sleep puts the system to sleep once per episode. After sleeping the
// feature disables itself until the user enables it again. A failed attempt
// leaves the feature enabled for the next episode.
func (d *Dispatcher) sleep(out *Outcome, name string, s settings.Settings, trigger bool) {
	if !trigger {
		if d.slept {
			d.debug(name, "Sleep episode ended")
		}
		d.slept = false
		return
	}

	if !s.EnableSleep || d.slept {
		return
	}

	// One attempt per episode, successful or not
	d.slept = true
	if err := d.actions.Sleep(); err != nil {
		d.report(out, name, "Sleep failed", err)
		return
	}

	out.fire(SleepReaction)
	d.log(name, "System put to sleep")

	if _, err := d.settings.Update(func(s *settings.Settings) { s.EnableSleep = false }); err != nil {
		d.report(out, name, "Settings not saved", err)
	}

	d.notify(Notice{
		Kind:    Info,
		Title:   "Sleep mode",
		Message: "The system has been put to sleep. Sleep on detection has been turned off.",
	})
}

func (d *Dispatcher) report(out *Outcome, name, title string, err error) {
	out.fail(err)
	d.log(name, "%s: %v", title, err)
	d.notify(Notice{
		Kind:    Warning,
		Title:   title,
		Message: err.Error(),
	})
}

func (d *Dispatcher) notify(notice Notice) {
	if d.notifier == nil {
		return
	}
	d.notifier.Notify(notice)
}

func (d *Dispatcher) log(name, format string, v ...interface{}) {
	if d.logger == nil {
		return
	}
	d.logger.Log(event.Reaction{
		ProcessName: name,
		Msg:         fmt.Sprintf(format, v...),
	})
}

func (d *Dispatcher) debug(name, format string, v ...interface{}) {
	if d.logger == nil {
		return
	}
	d.logger.Log(event.Reaction{
		ProcessName: name,
		Msg:         fmt.Sprintf(format, v...),
		Debug:       true,
	})
}
