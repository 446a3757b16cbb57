package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/scjalliance/procwatch/event"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits.
const (
	logMaxSize    = 10 // megabytes
	logMaxBackups = 3
	logMaxAge     = 7 // days
)

// newLogger returns an event logger that writes to a rotating log file in
// the settings directory. When console is true events are also written to
// stderr.
func newLogger(conf Config, console bool) (event.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   conf.LogPath(),
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAge,
	}

	var w io.Writer = rotator
	if console {
		w = io.MultiWriter(os.Stderr, rotator)
	}

	logger := log.New(w, "", log.LstdFlags)
	return event.Printer{Printf: logger.Printf, Debug: conf.Debug}, rotator
}

func logf(logger event.Logger, format string, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Log(event.Monitor{Msg: fmt.Sprintf(format, v...)})
}
