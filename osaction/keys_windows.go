//go:build windows
// +build windows

package osaction

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procKeybdEvent = moduser32.NewProc("keybd_event")
)

const (
	keyEventExtendedKey = 0x0001
	keyEventKeyUp       = 0x0002

	vkShift          = 0x10
	vkControl        = 0x11
	vkMenu           = 0x12
	vkLWin           = 0x5B
	vkVolumeMute     = 0xAD
	vkMediaPlayPause = 0xB3
)

// keyPause is the delay between key events of a chord.
const keyPause = 10 * time.Millisecond

var namedKeys = map[string]byte{
	"tab":   0x09,
	"enter": 0x0D,
	"esc":   0x1B,
	"space": 0x20,
	"left":  0x25,
	"up":    0x26,
	"right": 0x27,
	"down":  0x28,
	"f1":    0x70,
	"f2":    0x71,
	"f3":    0x72,
	"f4":    0x73,
	"f5":    0x74,
	"f6":    0x75,
	"f7":    0x76,
	"f8":    0x77,
	"f9":    0x78,
	"f10":   0x79,
	"f11":   0x7A,
	"f12":   0x7B,
}

func virtualKey(key string) (vk byte, extended bool, ok bool) {
	if len(key) == 1 {
		r := key[0]
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A', false, true
		case r >= '0' && r <= '9':
			return r, false, true
		}
		return 0, false, false
	}
	vk, ok = namedKeys[key]
	switch key {
	case "left", "up", "right", "down":
		extended = true
	}
	return vk, extended, ok
}

func sendChord(c Chord) error {
	if err := procKeybdEvent.Find(); err != nil {
		return err
	}

	vk, extended, ok := virtualKey(c.Key)
	if !ok {
		return fmt.Errorf("no virtual key for \"%s\"", c.Key)
	}

	type press struct {
		vk       byte
		extended bool
	}

	var keys []press
	if c.Ctrl {
		keys = append(keys, press{vkControl, false})
	}
	if c.Alt {
		keys = append(keys, press{vkMenu, false})
	}
	if c.Shift {
		keys = append(keys, press{vkShift, false})
	}
	if c.Win {
		keys = append(keys, press{vkLWin, true})
	}
	keys = append(keys, press{vk, extended})

	for _, k := range keys {
		keyEvent(k.vk, k.extended, false)
		time.Sleep(keyPause)
	}
	for i := len(keys) - 1; i >= 0; i-- {
		keyEvent(keys[i].vk, keys[i].extended, true)
	}

	return nil
}

func sendMediaKey(key mediaKey) error {
	if err := procKeybdEvent.Find(); err != nil {
		return err
	}

	var vk byte
	switch key {
	case mediaPlayPause:
		vk = vkMediaPlayPause
	case volumeMute:
		vk = vkVolumeMute
	default:
		return ErrUnsupported
	}

	keyEvent(vk, true, false)
	keyEvent(vk, true, true)
	return nil
}

func keyEvent(vk byte, extended, up bool) {
	var flags uintptr
	if extended {
		flags |= keyEventExtendedKey
	}
	if up {
		flags |= keyEventKeyUp
	}
	// keybd_event has no return value
	procKeybdEvent.Call(uintptr(vk), 0, flags, 0)
}
