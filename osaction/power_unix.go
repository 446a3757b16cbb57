//go:build !windows
// +build !windows

package osaction

func sleep() error {
	return ErrUnsupported
}
