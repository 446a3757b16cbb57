//go:build windows
// +build windows

package osaction

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	runKey        = `Software\Microsoft\Windows\CurrentVersion\Run`
	autostartName = "GlobalProcessWatcher"
)

// Autostart registers the current executable to start when the user
// signs in.
type Autostart struct {
	// Path is the executable to register. The current executable is used
	// when empty.
	Path string
}

// Enabled reports whether an autostart entry exists.
func (a Autostart) Enabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, mapRegistryError(err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(autostartName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, mapRegistryError(err)
	}
	return value != "", nil
}

// Set adds or removes the autostart entry.
func (a Autostart) Set(enabled bool) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return mapRegistryError(err)
	}
	defer key.Close()

	if !enabled {
		if err := key.DeleteValue(autostartName); err != nil && !errors.Is(err, registry.ErrNotExist) {
			return mapRegistryError(err)
		}
		return nil
	}

	path, err := a.path()
	if err != nil {
		return err
	}
	if err := key.SetStringValue(autostartName, quote(path)); err != nil {
		return mapRegistryError(err)
	}
	return nil
}

func (a Autostart) path() (string, error) {
	if a.Path != "" {
		return a.Path, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate executable: %v", err)
	}
	return exe, nil
}

func quote(path string) string {
	if strings.HasPrefix(path, `"`) {
		return path
	}
	return `"` + path + `"`
}

func mapRegistryError(err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	return err
}
