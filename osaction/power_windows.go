//go:build windows
// +build windows

package osaction

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modpowrprof = windows.NewLazySystemDLL("powrprof.dll")

	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
	procSetSuspendState         = modpowrprof.NewProc("SetSuspendState")
)

const (
	esContinuous     = 0x80000000
	esSystemRequired = 0x00000001
)

func sleep() error {
	if err := procSetSuspendState.Find(); err != nil {
		return fmt.Errorf("sleep is unavailable: %v", err)
	}

	procSetThreadExecutionState.Call(esContinuous | esSystemRequired)
	defer procSetThreadExecutionState.Call(esContinuous)

	// Suspend rather than hibernate, forcing the transition
	r0, _, e0 := procSetSuspendState.Call(0, 1, 0)
	if r0 == 0 {
		return fmt.Errorf("unable to enter sleep: %v", e0)
	}
	return nil
}
