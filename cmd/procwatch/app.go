package main

import (
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"
)

// App returns a new procwatch kingpin app without any commands.
func App() *kingpin.Application {
	app := kingpin.New(filepath.Base(os.Args[0]), "Watches for screen sharing agents and reacts when they start or stop.")
	app.Version(Version)
	app.Interspersed(false)
	return app
}
