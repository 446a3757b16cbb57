package settings

// Field identifies one of the boolean toggles.
type Field int

// Boolean toggles, in menu order.
const (
	AutoStart Field = iota
	ShowAlert
	AlertOnTop
	EnableHotkey
	EnableSleep
	AutoPause
	AutoMute
	AutoKill
	OnlyRTCEffective
)

// Fields lists every toggle in menu order.
var Fields = []Field{
	AutoStart,
	ShowAlert,
	AlertOnTop,
	EnableHotkey,
	EnableSleep,
	AutoPause,
	AutoMute,
	AutoKill,
	OnlyRTCEffective,
}

// String returns the JSON key of the field.
func (f Field) String() string {
	switch f {
	case AutoStart:
		return "auto_start"
	case ShowAlert:
		return "show_alert"
	case AlertOnTop:
		return "alert_on_top"
	case EnableHotkey:
		return "enable_hotkey"
	case EnableSleep:
		return "enable_sleep"
	case AutoPause:
		return "auto_pause"
	case AutoMute:
		return "auto_mute"
	case AutoKill:
		return "auto_kill"
	case OnlyRTCEffective:
		return "only_rtc_effective"
	default:
		return "unknown"
	}
}

// Title returns a human readable label for the field.
func (f Field) Title() string {
	switch f {
	case AutoStart:
		return "Start with Windows"
	case ShowAlert:
		return "Show alerts"
	case AlertOnTop:
		return "Alerts on top"
	case EnableHotkey:
		return "Switch desktops"
	case EnableSleep:
		return "Sleep on detection"
	case AutoPause:
		return "Pause media"
	case AutoMute:
		return "Mute audio"
	case AutoKill:
		return "Terminate processes"
	case OnlyRTCEffective:
		return "Remote desktop only"
	default:
		return "Unknown"
	}
}

// Get returns the value of field f.
func (s Settings) Get(f Field) bool {
	switch f {
	case AutoStart:
		return s.AutoStart
	case ShowAlert:
		return s.ShowAlert
	case AlertOnTop:
		return s.AlertOnTop
	case EnableHotkey:
		return s.EnableHotkey
	case EnableSleep:
		return s.EnableSleep
	case AutoPause:
		return s.AutoPause
	case AutoMute:
		return s.AutoMute
	case AutoKill:
		return s.AutoKill
	case OnlyRTCEffective:
		return s.OnlyRTCEffective
	}
	return false
}

// Set assigns value to field f.
//
// Enabling ShowAlert disables AutoKill and enabling AutoKill disables
// ShowAlert.
func (s *Settings) Set(f Field, value bool) {
	switch f {
	case AutoStart:
		s.AutoStart = value
	case ShowAlert:
		s.ShowAlert = value
		if value {
			s.AutoKill = false
		}
	case AlertOnTop:
		s.AlertOnTop = value
	case EnableHotkey:
		s.EnableHotkey = value
	case EnableSleep:
		s.EnableSleep = value
	case AutoPause:
		s.AutoPause = value
	case AutoMute:
		s.AutoMute = value
	case AutoKill:
		s.AutoKill = value
		if value {
			s.ShowAlert = false
		}
	case OnlyRTCEffective:
		s.OnlyRTCEffective = value
	}
}
