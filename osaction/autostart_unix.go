//go:build !windows
// +build !windows

package osaction

// Autostart is unavailable on this platform.
type Autostart struct {
	Path string
}

// Enabled always returns false.
func (Autostart) Enabled() (bool, error) {
	return false, nil
}

// Set returns ErrUnsupported.
func (Autostart) Set(enabled bool) error {
	return ErrUnsupported
}
