package trayui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/scjalliance/procwatch/settings"
	"github.com/scjalliance/procwatch/watcher"
)

// IconSize is the width and height of the rendered icon.
const IconSize = 64

// Icon colors.
var (
	Background = color.RGBA{40, 40, 40, 255}
	Off        = color.RGBA{100, 100, 100, 255}
	AlertBlue  = color.RGBA{0, 191, 255, 255}
	HotkeyGold = color.RGBA{255, 204, 0, 255}
	TopCyan    = color.RGBA{0, 255, 255, 255}
	SleepAmber = color.RGBA{255, 119, 0, 255}
	Clear      = color.RGBA{0, 200, 83, 255}
	Detected   = color.RGBA{229, 57, 53, 255}
	Capture    = color.RGBA{255, 214, 0, 255}
)

// Ring geometry, measured from the centre of the icon.
const (
	outerMin = 23.0
	outerMax = 30.0
	innerMin = 14.0
	innerMax = 20.0
	dotMax   = 10.0
)

// MenuItem is a checkable entry of the tray menu.
type MenuItem struct {
	Field   settings.Field
	Label   string
	Checked bool
}

// Menu returns the toggle entries of the tray menu for s.
func Menu(s settings.Settings) []MenuItem {
	items := make([]MenuItem, 0, len(settings.Fields))
	for _, f := range settings.Fields {
		items = append(items, MenuItem{
			Field:   f,
			Label:   f.Title(),
			Checked: s.Get(f),
		})
	}
	return items
}

// ring holds the two colors of a ring. Both halves share a color unless
// both of its features are enabled.
type ring struct {
	left, right color.RGBA
}

func makeRing(a, b bool, aColor, bColor color.RGBA) ring {
	switch {
	case a && b:
		return ring{left: aColor, right: bColor}
	case a:
		return ring{left: aColor, right: aColor}
	case b:
		return ring{left: bColor, right: bColor}
	default:
		return ring{left: Off, right: Off}
	}
}

func (r ring) at(x float64) color.RGBA {
	if x < 0 {
		return r.left
	}
	return r.right
}

// Centre returns the color of the centre dot for the given states.
func Centre(states watcher.States) color.RGBA {
	switch {
	case states.Running(watcher.RemoteDesktopAgent):
		return Detected
	case states.Running(watcher.ScreenCaptureAgent):
		return Capture
	case states.Any():
		return Detected
	default:
		return Clear
	}
}

// Icon renders the tray icon for the given settings and states.
//
// The outer ring shows the alert and hotkey features, the inner ring shows
// the alert placement and sleep features, and the centre dot shows whether
// a watched process is running.
func Icon(s settings.Settings, states watcher.States) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))

	outer := makeRing(s.ShowAlert, s.EnableHotkey, AlertBlue, HotkeyGold)
	inner := makeRing(s.AlertOnTop, s.EnableSleep, TopCyan, SleepAmber)
	centre := Centre(states)

	mid := float64(IconSize) / 2
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx := float64(x) + 0.5 - mid
			dy := float64(y) + 0.5 - mid
			d := math.Hypot(dx, dy)

			c := Background
			switch {
			case d <= dotMax:
				c = centre
			case d >= innerMin && d <= innerMax:
				c = inner.at(dx)
			case d >= outerMin && d <= outerMax:
				c = outer.at(dx)
			}
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// ToolTip returns a short summary of the process states.
func ToolTip(states watcher.States) string {
	var running []string
	for _, state := range states {
		if state.Running {
			running = append(running, state.Process.Name)
		}
	}
	if len(running) == 0 {
		return "Process watcher: nothing detected"
	}
	tip := fmt.Sprintf("Process watcher: %s running", strings.Join(running, ", "))

	// Tool tips are truncated by the shell
	const max = 127
	if len(tip) > max {
		tip = tip[:max-3] + "..."
	}
	return tip
}

// StatusText returns a multi-line description of the settings and states.
func StatusText(s settings.Settings, states watcher.States) string {
	var b strings.Builder

	b.WriteString("Processes:\n")
	for _, state := range states {
		status := "not running"
		if state.Running {
			status = "running"
		}
		fmt.Fprintf(&b, "  %s: %s\n", state.Process.Name, status)
	}

	b.WriteString("\nSettings:\n")
	for _, item := range Menu(s) {
		status := "off"
		if item.Checked {
			status = "on"
		}
		fmt.Fprintf(&b, "  %s: %s\n", item.Label, status)
	}
	fmt.Fprintf(&b, "  Check interval: %gs\n", s.CheckInterval)
	fmt.Fprintf(&b, "  Alert duration: %ds\n", s.AlertDuration)

	return b.String()
}
