//go:build windows
// +build windows

package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/windows"
)

// attachParentProcess selects the console of the parent process.
const attachParentProcess = ^uintptr(0)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
	procAllocConsole  = kernel32.NewProc("AllocConsole")
)

// prepareConsole gives the command line commands somewhere to write. The
// executable is linked as a GUI program so that the tray starts without a
// console window.
//
// With attach set the console of the invoking shell is reused when there is
// one. Otherwise a new console window is opened.
func prepareConsole(attach bool) error {
	if attach {
		if r, _, _ := procAttachConsole.Call(attachParentProcess); r != 0 {
			if err := redirectStd(); err != nil {
				return err
			}
			// The shell prompt has already been printed
			fmt.Println()
			return nil
		}
	}

	if r, _, err := procAllocConsole.Call(); r == 0 {
		return fmt.Errorf("unable to open a console: %w", err)
	}
	return redirectStd()
}

// redirectStd points the standard files at the current console.
func redirectStd() error {
	streams := []struct {
		id   uint32
		file **os.File
		name string
	}{
		{windows.STD_INPUT_HANDLE, &os.Stdin, "stdin"},
		{windows.STD_OUTPUT_HANDLE, &os.Stdout, "stdout"},
		{windows.STD_ERROR_HANDLE, &os.Stderr, "stderr"},
	}
	for _, stream := range streams {
		h, err := windows.GetStdHandle(stream.id)
		if err != nil {
			return fmt.Errorf("no console %s: %w", stream.name, err)
		}
		*stream.file = os.NewFile(uintptr(h), stream.name)
	}
	log.SetOutput(os.Stderr)
	return nil
}
