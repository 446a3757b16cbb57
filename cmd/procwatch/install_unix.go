//go:build !windows
// +build !windows

package main

import (
	"fmt"

	"github.com/scjalliance/procwatch/osaction"
)

func install(conf Config) error {
	return fmt.Errorf("installation is only available on windows: %w", osaction.ErrUnsupported)
}
