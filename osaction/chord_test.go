package osaction

import "testing"

func TestParseChord(t *testing.T) {
	tests := []struct {
		in   string
		want Chord
	}{
		{"ctrl+windows+d", Chord{Ctrl: true, Win: true, Key: "d"}},
		{"ctrl+windows+f4", Chord{Ctrl: true, Win: true, Key: "f4"}},
		{"Ctrl + Win + Left", Chord{Ctrl: true, Win: true, Key: "left"}},
		{"alt+shift+tab", Chord{Alt: true, Shift: true, Key: "tab"}},
		{"x", Chord{Key: "x"}},
	}
	for _, tt := range tests {
		got, err := ParseChord(tt.in)
		if err != nil {
			t.Errorf("ParseChord(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChord(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseChordErrors(t *testing.T) {
	for _, in := range []string{"", "ctrl+windows", "ctrl++d", "ctrl+d+e", "ctrl+banana"} {
		if _, err := ParseChord(in); err == nil {
			t.Errorf("ParseChord(%q) succeeded, want error", in)
		}
	}
}

func TestChordString(t *testing.T) {
	c, err := ParseChord("windows+ctrl+f4")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "ctrl+windows+f4" {
		t.Fatalf("String() = %q", got)
	}
}
