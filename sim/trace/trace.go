package trace

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tracer is an append-only log of structured events plus human-readable messages.
// It is owned by exactly one simulation run.
type Tracer struct {
	events []Event
	log    []string
}

// NewTracer creates a Tracer ready for recording.
func NewTracer() *Tracer {
	return &Tracer{
		events: make([]Event, 0),
		log:    make([]string, 0),
	}
}

// Record appends a structured event and, when msg is non-empty, a formatted log line.
func (t *Tracer) Record(time int64, eventType EventType, pid int, msg string) {
	t.events = append(t.events, Event{Time: time, Type: eventType, PID: pid})
	if msg != "" {
		t.log = append(t.log, fmt.Sprintf("T=%d: %s", time, msg))
	}
	if pid == NoPID {
		logrus.Debugf("[tick %07d] %s", time, eventType)
	} else {
		logrus.Debugf("[tick %07d] %s pid=%d", time, eventType, pid)
	}
}

// Events returns a copy of the recorded events in creation order.
func (t *Tracer) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Log returns a copy of the recorded log lines.
func (t *Tracer) Log() []string {
	out := make([]string, len(t.log))
	copy(out, t.log)
	return out
}

// Len returns the number of recorded events.
func (t *Tracer) Len() int {
	return len(t.events)
}
