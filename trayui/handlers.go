package trayui

import (
	"fmt"

	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/settings"
)

// Handlers receive the commands chosen from the tray menu.
//
// Handlers are invoked on the user interface thread and should return
// promptly.
type Handlers struct {
	Toggle    func(settings.Field) (settings.Settings, error)
	SetTiming func(interval float64, duration int) (settings.Settings, error)
	Exit      func()
}

func log(logger event.Logger, format string, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Log(event.UI{
		Msg: fmt.Sprintf(format, v...),
	})
}

func debug(logger event.Logger, format string, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Log(event.UI{
		Msg:   fmt.Sprintf(format, v...),
		Debug: true,
	})
}
