package history

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a journaled transition.
type Entry struct {
	Seq       uint64    `json:"-"`
	Time      time.Time `json:"time"`
	Process   string    `json:"process"`
	Running   bool      `json:"running"`
	Reactions []string  `json:"reactions,omitempty"`
	Errors    []string  `json:"errors,omitempty"`
	Episode   string    `json:"episode,omitempty"`
}

// String returns a string representation of the entry.
func (e Entry) String() string {
	state := "stopped"
	if e.Running {
		state = "started"
	}
	s := fmt.Sprintf("%s %s %s", e.Time.Format("2006-01-02 15:04:05.000"), e.Process, state)
	if len(e.Reactions) > 0 {
		s += " [" + strings.Join(e.Reactions, ",") + "]"
	}
	if len(e.Errors) > 0 {
		s += fmt.Sprintf(" (%d errors)", len(e.Errors))
	}
	return s
}
