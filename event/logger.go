package event

// A Logger is capable of logging events.
type Logger interface {
	Log(Event)
}

// Printer is a logger that formats events through a Printf function, such
// as the one provided by a standard library log.Logger.
type Printer struct {
	Printf func(format string, v ...interface{})
	Debug  bool // Include debug events
}

// Log writes e if it is not filtered out.
func (p Printer) Log(e Event) {
	if p.Printf == nil {
		return
	}
	if e.IsDebug() && !p.Debug {
		return
	}
	p.Printf("%s", e)
}

// Discard is a logger that drops all events.
var Discard Logger = discard{}

type discard struct{}

func (discard) Log(Event) {}
