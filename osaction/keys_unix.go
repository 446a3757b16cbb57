//go:build !windows
// +build !windows

package osaction

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"
)

var (
	bondingOnce sync.Once
	bonding     keybd_event.KeyBonding
	bondingErr  error
	bondingMu   sync.Mutex
)

// keyBonding returns the shared virtual keyboard. On linux the virtual
// device needs a moment to register before it accepts events.
func keyBonding() (*keybd_event.KeyBonding, error) {
	bondingOnce.Do(func() {
		bonding, bondingErr = keybd_event.NewKeyBonding()
		if bondingErr == nil && runtime.GOOS == "linux" {
			time.Sleep(2 * time.Second)
		}
	})
	return &bonding, bondingErr
}

func virtualKey(key string) (int, bool) {
	switch key {
	case "a":
		return keybd_event.VK_A, true
	case "b":
		return keybd_event.VK_B, true
	case "c":
		return keybd_event.VK_C, true
	case "d":
		return keybd_event.VK_D, true
	case "e":
		return keybd_event.VK_E, true
	case "f":
		return keybd_event.VK_F, true
	case "l":
		return keybd_event.VK_L, true
	case "m":
		return keybd_event.VK_M, true
	case "p":
		return keybd_event.VK_P, true
	case "q":
		return keybd_event.VK_Q, true
	case "s":
		return keybd_event.VK_S, true
	case "w":
		return keybd_event.VK_W, true
	case "f1":
		return keybd_event.VK_F1, true
	case "f2":
		return keybd_event.VK_F2, true
	case "f3":
		return keybd_event.VK_F3, true
	case "f4":
		return keybd_event.VK_F4, true
	case "f5":
		return keybd_event.VK_F5, true
	case "left":
		return keybd_event.VK_LEFT, true
	case "right":
		return keybd_event.VK_RIGHT, true
	case "up":
		return keybd_event.VK_UP, true
	case "down":
		return keybd_event.VK_DOWN, true
	case "tab":
		return keybd_event.VK_TAB, true
	case "esc":
		return keybd_event.VK_ESC, true
	case "enter":
		return keybd_event.VK_ENTER, true
	case "space":
		return keybd_event.VK_SPACE, true
	}
	return 0, false
}

func sendChord(c Chord) error {
	vk, ok := virtualKey(c.Key)
	if !ok {
		return fmt.Errorf("no virtual key for \"%s\": %w", c.Key, ErrUnsupported)
	}

	kb, err := keyBonding()
	if err != nil {
		return err
	}

	bondingMu.Lock()
	defer bondingMu.Unlock()

	kb.Clear()
	kb.SetKeys(vk)
	kb.HasCTRL(c.Ctrl)
	kb.HasALT(c.Alt)
	kb.HasSHIFT(c.Shift)
	kb.HasSuper(c.Win)

	return kb.Launching()
}

func sendMediaKey(key mediaKey) error {
	return ErrUnsupported
}
