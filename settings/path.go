package settings

import (
	"errors"
	"os"
	"path/filepath"
)

// Well-known names within the settings directory.
const (
	DirName  = "GlobalProcessWatcher"
	FileName = "settings.json"
)

// DefaultDir returns the directory that holds the settings file and other
// per-user state.
func DefaultDir() (string, error) {
	if base := os.Getenv("LOCALAPPDATA"); base != "" {
		return filepath.Join(base, DirName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.New("unable to determine the local application data directory")
	}
	return filepath.Join(base, DirName), nil
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
