//go:build !windows
// +build !windows

package osaction

import "os"

// IsElevated reports whether the current process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// Relaunch returns ErrUnsupported.
func Relaunch(args ...string) error {
	return ErrUnsupported
}
