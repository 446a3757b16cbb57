//go:build windows
// +build windows

package osaction

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process runs with an elevated
// token.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch starts the current executable again with administrative rights
// and the given arguments. The caller is expected to exit afterward.
func Relaunch(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("unable to locate executable: %v", err)
	}

	verb, _ := syscall.UTF16PtrFromString("runas")
	file, _ := syscall.UTF16PtrFromString(exe)
	params, _ := syscall.UTF16PtrFromString(strings.Join(quoteArgs(args), " "))
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	dir, _ := syscall.UTF16PtrFromString(cwd)

	if err := windows.ShellExecute(0, verb, file, params, dir, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("elevation request failed: %v", err)
	}
	return nil
}

func quoteArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = syscall.EscapeArg(arg)
	}
	return out
}
