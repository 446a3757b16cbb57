//go:build !windows
// +build !windows

package osaction

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

func terminate(name string) error {
	procs, err := process.Processes()
	if err != nil {
		return err
	}

	var failed error
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil || !strings.EqualFold(pname, name) {
			continue
		}
		if err := p.Kill(); err != nil {
			if errors.Is(err, os.ErrPermission) {
				err = ErrAccessDenied
			}
			failed = fmt.Errorf("unable to terminate process %d: %w", p.Pid, err)
		}
	}
	return failed
}
