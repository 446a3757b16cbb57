//go:build windows
// +build windows

package osaction

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/gentlemanautomaton/winproc"
	"github.com/gentlemanautomaton/winproc/processaccess"
)

// exitCode is the exit code given to terminated processes.
const exitCode = 1

func terminate(name string) error {
	procs, err := winproc.List(winproc.Include(winproc.MatchName(func(n string) bool {
		return strings.EqualFold(n, name)
	})))
	if err != nil {
		return taskkill(name)
	}

	var failed error
	for _, proc := range procs {
		if err := terminateProcess(proc.ID); err != nil {
			failed = err
		}
	}
	if failed == nil {
		return nil
	}

	// Some processes can't be opened with terminate rights by the current
	// user; taskkill is tried before giving up.
	if err := taskkill(name); err != nil {
		return fmt.Errorf("%v (fallback: %w)", failed, err)
	}
	return nil
}

func terminateProcess(id winproc.ID) error {
	ref, err := winproc.Open(id, processaccess.Terminate)
	if err != nil {
		return fmt.Errorf("unable to open process %d: %v", id, err)
	}
	defer ref.Close()

	if err := ref.Terminate(exitCode); err != nil {
		return fmt.Errorf("unable to terminate process %d: %v", id, err)
	}
	return nil
}

func taskkill(name string) error {
	cmd := exec.Command("taskkill", "/F", "/IM", name)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}

	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	msg := strings.TrimSpace(string(out))
	if bytes.Contains(bytes.ToLower(out), []byte("access is denied")) {
		return fmt.Errorf("%w: %s", ErrAccessDenied, msg)
	}
	if msg == "" {
		return fmt.Errorf("taskkill failed: %v", err)
	}
	return fmt.Errorf("taskkill failed: %s", msg)
}
