package trayui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

func states(running ...string) watcher.States {
	var out watcher.States
	for _, proc := range watcher.DefaultProcesses() {
		out = append(out, watcher.State{Process: proc})
	}
	out = append(out, watcher.State{Process: watcher.NewProcess("other.exe")})
	for _, name := range running {
		out = out.With(name, true)
	}
	return out
}

func TestMenu(t *testing.T) {
	s := settings.Defaults()
	s.ShowAlert = true
	s.EnableSleep = true

	items := Menu(s)
	if len(items) != len(settings.Fields) {
		t.Fatalf("menu has %d items, want %d", len(items), len(settings.Fields))
	}
	for i, item := range items {
		if item.Field != settings.Fields[i] {
			t.Errorf("item %d is %s, want %s", i, item.Field, settings.Fields[i])
		}
		if item.Label == "" {
			t.Errorf("item %d has no label", i)
		}
		want := item.Field == settings.ShowAlert || item.Field == settings.EnableSleep
		if item.Checked != want {
			t.Errorf("item %s checked=%t, want %t", item.Field, item.Checked, want)
		}
	}
}

func TestCentre(t *testing.T) {
	tests := []struct {
		name    string
		running []string
		want    color.RGBA
	}{
		{"idle", nil, Clear},
		{"remote", []string{watcher.RemoteDesktopAgent}, Detected},
		{"capture", []string{watcher.ScreenCaptureAgent}, Capture},
		{"both", []string{watcher.ScreenCaptureAgent, watcher.RemoteDesktopAgent}, Detected},
		{"other", []string{"other.exe"}, Detected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Centre(states(tt.running...)); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	const mid = IconSize / 2
	left := func(r int) image.Point { return image.Pt(mid-r-1, mid) }
	right := func(r int) image.Point { return image.Pt(mid+r, mid) }

	tests := []struct {
		name   string
		fields []settings.Field
		outerL color.RGBA
		outerR color.RGBA
		innerL color.RGBA
		innerR color.RGBA
	}{
		{"off", nil, Off, Off, Off, Off},
		{"alert", []settings.Field{settings.ShowAlert}, AlertBlue, AlertBlue, Off, Off},
		{"hotkey", []settings.Field{settings.EnableHotkey}, HotkeyGold, HotkeyGold, Off, Off},
		{"split", []settings.Field{settings.ShowAlert, settings.EnableHotkey}, AlertBlue, HotkeyGold, Off, Off},
		{"top", []settings.Field{settings.AlertOnTop}, Off, Off, TopCyan, TopCyan},
		{"inner", []settings.Field{settings.AlertOnTop, settings.EnableSleep}, Off, Off, TopCyan, SleepAmber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.Defaults()
			for _, f := range tt.fields {
				s.Set(f, true)
			}
			img := Icon(s, states())

			if b := img.Bounds(); b.Dx() != IconSize || b.Dy() != IconSize {
				t.Fatalf("icon is %dx%d", b.Dx(), b.Dy())
			}
			check := func(what string, p image.Point, want color.RGBA) {
				t.Helper()
				if got := img.RGBAAt(p.X, p.Y); got != want {
					t.Errorf("%s at %v is %v, want %v", what, p, got, want)
				}
			}
			check("outer left", left(26), tt.outerL)
			check("outer right", right(26), tt.outerR)
			check("inner left", left(17), tt.innerL)
			check("inner right", right(17), tt.innerR)
			check("centre", image.Pt(mid, mid), Clear)
			check("corner", image.Pt(0, 0), Background)
		})
	}
}

func TestToolTip(t *testing.T) {
	if tip := ToolTip(states()); !strings.Contains(tip, "nothing") {
		t.Errorf("idle tool tip %q", tip)
	}
	tip := ToolTip(states(watcher.ScreenCaptureAgent))
	if !strings.Contains(tip, watcher.ScreenCaptureAgent) {
		t.Errorf("tool tip %q does not name the running process", tip)
	}
	if len(tip) > 127 {
		t.Errorf("tool tip is %d bytes long", len(tip))
	}
}

func TestStatusText(t *testing.T) {
	s := settings.Defaults()
	s.AutoKill = true
	text := StatusText(s, states(watcher.RemoteDesktopAgent))

	for _, want := range []string{
		watcher.RemoteDesktopAgent + ": running",
		watcher.ScreenCaptureAgent + ": not running",
		settings.AutoKill.Title() + ": on",
		settings.ShowAlert.Title() + ": off",
		"Check interval: 0.25s",
		"Alert duration: 3s",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("status text lacks %q:\n%s", want, text)
		}
	}
}
