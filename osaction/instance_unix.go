//go:build !windows
// +build !windows

package osaction

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// InstanceName is the name of the single instance lock file.
const InstanceName = "procwatch.pid"

// Instance holds the single instance lock until released.
type Instance struct {
	path string
}

// AcquireInstance acquires the single instance lock. It returns
// ErrAlreadyRunning if a live process holds it.
func AcquireInstance() (*Instance, error) {
	path := filepath.Join(os.TempDir(), InstanceName)

	if data, err := os.ReadFile(path); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && pid != os.Getpid() {
			if proc, err := ps.FindProcess(pid); err == nil && proc != nil {
				return nil, ErrAlreadyRunning
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to read instance lock: %v", err)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		return nil, fmt.Errorf("unable to write instance lock: %v", err)
	}
	return &Instance{path: path}, nil
}

// Release releases the single instance lock.
func (inst *Instance) Release() error {
	if inst == nil || inst.path == "" {
		return nil
	}
	err := os.Remove(inst.path)
	inst.path = ""
	return err
}
