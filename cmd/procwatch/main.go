package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/gentlemanautomaton/signaler"
	"github.com/scjalliance/procwatch/settings"
)

func main() {
	app := App()

	var (
		settingsPath = app.Flag("settings", "Settings file path.").Envar("PROCWATCH_SETTINGS").Default(defaultSettingsPath()).String()
		watch        = app.Flag("watch", "Additional executable name to watch. May be repeated.").Short('w').Strings()
		debug        = app.Flag("debug", "Log debug events.").Envar("PROCWATCH_DEBUG").Bool()
	)

	var (
		runCmd     = app.Command("run", "Watches processes from the system tray.").Default()
		runStatHat = runCmd.Flag("stathat", "StatHat EZ key for transition statistics.").Envar("PROCWATCH_STATHAT").String()
	)

	statusCmd := app.Command("status", "Prints the settings and the state of watched processes.")

	var (
		historyCmd   = app.Command("history", "Prints recently journaled transitions.")
		historyCount = historyCmd.Flag("count", "Number of entries to print.").Short('n').Default("20").Int()
	)

	installCmd := app.Command("install", "Installs procwatch for the current user and starts it on sign in.")
	uninstallCmd := app.Command("uninstall", "Stops procwatch from starting on sign in.")

	var (
		autostartCmd   = app.Command("autostart", "Turns start on sign in on or off.")
		autostartState = autostartCmd.Arg("state", "on or off").Required().Enum("on", "off")
	)

	command, err := app.Parse(os.Args[1:])
	if err != nil {
		prepareConsole(false)
		app.Fatalf("%s, try --help", err)
	}

	conf := Config{
		SettingsPath: *settingsPath,
		Watch:        *watch,
		Debug:        *debug,
	}

	if command != runCmd.FullCommand() {
		prepareConsole(true)
	}

	// Shutdown when we receive a termination signal
	shutdown := signaler.New().Capture(os.Interrupt, syscall.SIGTERM)

	// Ensure that we cleanup even if we panic
	defer shutdown.Trigger()

	ctx := shutdown.Context()

	switch command {
	case runCmd.FullCommand():
		conf.StatHat = *runStatHat
		err = run(ctx, func() { shutdown.Trigger() }, conf)
	case statusCmd.FullCommand():
		err = status(conf)
	case historyCmd.FullCommand():
		err = printHistory(conf, *historyCount)
	case installCmd.FullCommand():
		err = install(conf)
	case uninstallCmd.FullCommand():
		err = uninstall(conf)
	case autostartCmd.FullCommand():
		err = autostart(conf, *autostartState == "on")
	}

	if err != nil {
		fail(command, err)
	}
}

// fail reports err and exits.
func fail(command string, err error) {
	if command == "run" {
		msgBox(ProgramName, err.Error())
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
	os.Exit(1)
}

func defaultSettingsPath() string {
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.FileName
	}
	return path
}
