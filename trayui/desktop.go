package trayui

import (
	"github.com/gen2brain/beeep"
	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/reaction"
)

// Desktop delivers notices as desktop notifications. It is used when no
// tray is available.
type Desktop struct {
	AppName string
	Logger  event.Logger

	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// NewDesktop returns a desktop notifier for the named application.
func NewDesktop(appName string, logger event.Logger) *Desktop {
	if appName != "" {
		beeep.AppName = appName
	}
	return &Desktop{
		AppName: appName,
		Logger:  logger,
		notify:  beeep.Notify,
		alert:   beeep.Alert,
	}
}

// Notify sends notice as a desktop notification. Alerts also sound the
// system alert.
func (d *Desktop) Notify(notice reaction.Notice) {
	send := d.notify
	if notice.Kind == reaction.Alert {
		send = d.alert
	}
	if send == nil {
		return
	}
	if err := send(notice.Title, notice.Message, ""); err != nil {
		log(d.Logger, "Unable to send desktop notification \"%s\": %v", notice.Title, err)
		return
	}
	debug(d.Logger, "Sent desktop notification \"%s\"", notice.Title)
}

var _ reaction.Notifier = (*Desktop)(nil)
