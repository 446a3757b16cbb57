package main

import (
	"time"

	"github.com/gentlemanautomaton/stathat"
	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/monitor"
)

// StatHatRecipient is a transition recorder that sends statistics to
// StatHat.
type StatHatRecipient struct {
	reporter stathat.StatHat
	prefix   string
	logger   event.Logger
}

// NewStatHatRecipient creates a new StatHat recorder with the given key.
func NewStatHatRecipient(statNamePrefix string, ezkey string, logger event.Logger) StatHatRecipient {
	return StatHatRecipient{
		reporter: stathat.New().EZKey(ezkey),
		prefix:   statNamePrefix,
		logger:   logger,
	}
}

// Record posts the running state of the process and the number of reactions
// that fired. Posting happens in the background.
func (r StatHatRecipient) Record(rec monitor.Record) error {
	t := rec.Transition
	running := 0
	if t.Running {
		running = 1
	}
	go func() {
		if err := r.send(t.Process.Name+" running", float64(running), t.Time); err != nil {
			logf(r.logger, "StatHat: %v", err)
			return
		}
		if err := r.send(t.Process.Name+" reactions", float64(len(rec.Outcome.Fired)), t.Time); err != nil {
			logf(r.logger, "StatHat: %v", err)
		}
	}()
	return nil
}

func (r StatHatRecipient) send(name string, value float64, t time.Time) error {
	name = r.prefix + " " + name
	var err error
	for i := 0; i < 3; i++ {
		if i > 0 {
			time.Sleep(200 * time.Millisecond * time.Duration(i))
		}
		err = r.reporter.PostEZ(name, stathat.KindValue, value, &t)
		if err == nil {
			return nil
		}
	}
	return err
}
