//go:build windows
// +build windows

package osaction

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// InstanceName is the name of the single instance mutex.
const InstanceName = "GlobalProcessWatcherMutex"

// Instance holds the single instance lock until released.
type Instance struct {
	handle windows.Handle
}

// AcquireInstance acquires the single instance lock. It returns
// ErrAlreadyRunning if another process holds it.
func AcquireInstance() (*Instance, error) {
	name, err := windows.UTF16PtrFromString(InstanceName)
	if err != nil {
		return nil, err
	}
	handle, err := windows.CreateMutex(nil, false, name)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("unable to create instance mutex: %v", err)
	}
	return &Instance{handle: handle}, nil
}

// Release releases the single instance lock.
func (inst *Instance) Release() error {
	if inst == nil || inst.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(inst.handle)
	inst.handle = 0
	return err
}
