package osaction

import (
	"fmt"
	"strings"
)

// Chord is a key combination.
type Chord struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Win   bool
	Key   string // Lower case key name, such as "d", "f4" or "left"
}

// ParseChord parses a key combination such as "ctrl+windows+f4".
//
// Modifier names are ctrl, alt, shift and windows (or win). Exactly one
// non-modifier key is required.
func ParseChord(s string) (c Chord, err error) {
	for _, part := range strings.Split(strings.ToLower(s), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl", "control":
			c.Ctrl = true
		case "alt":
			c.Alt = true
		case "shift":
			c.Shift = true
		case "windows", "win", "super":
			c.Win = true
		case "":
			return Chord{}, fmt.Errorf("invalid hotkey \"%s\": empty key", s)
		default:
			if c.Key != "" {
				return Chord{}, fmt.Errorf("invalid hotkey \"%s\": more than one key", s)
			}
			if !knownKey(part) {
				return Chord{}, fmt.Errorf("invalid hotkey \"%s\": unknown key \"%s\"", s, part)
			}
			c.Key = part
		}
	}
	if c.Key == "" {
		return Chord{}, fmt.Errorf("invalid hotkey \"%s\": no key", s)
	}
	return c, nil
}

// String returns the chord in the form accepted by ParseChord.
func (c Chord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Win {
		parts = append(parts, "windows")
	}
	return strings.Join(append(parts, c.Key), "+")
}

func knownKey(key string) bool {
	if len(key) == 1 {
		r := key[0]
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	switch key {
	case "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
		"left", "right", "up", "down", "tab", "esc", "enter", "space":
		return true
	}
	return false
}
