package event

import (
	"fmt"
	"testing"
)

func TestEventStrings(t *testing.T) {
	tests := []struct {
		event Event
		want  string
		id    uint32
	}{
		{Monitor{Msg: "started"}, "[MONITOR] started", MonitorEventID},
		{Settings{Msg: "loaded"}, "[SETTINGS] loaded", SettingsEventID},
		{Settings{Path: "a.json", Msg: "saved"}, "[SETTINGS] a.json: saved", SettingsEventID},
		{Reaction{ProcessName: "x.exe", Msg: "alert"}, "[REACTION] x.exe: alert", ReactionEventID},
		{UI{Msg: "tray started"}, "[UI] tray started", UIEventID},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.event.ID(); got != tt.id {
			t.Errorf("%s: ID() = %d, want %d", tt.want, got, tt.id)
		}
	}
}

func TestPrinterFiltersDebug(t *testing.T) {
	var lines []string
	printf := func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}

	quiet := Printer{Printf: printf}
	quiet.Log(Monitor{Msg: "visible"})
	quiet.Log(Monitor{Msg: "hidden", Debug: true})
	if len(lines) != 1 || lines[0] != "[MONITOR] visible" {
		t.Fatalf("unexpected output without debug: %v", lines)
	}

	lines = nil
	verbose := Printer{Printf: printf, Debug: true}
	verbose.Log(Monitor{Msg: "shown", Debug: true})
	if len(lines) != 1 {
		t.Fatalf("debug event not logged: %v", lines)
	}
}
