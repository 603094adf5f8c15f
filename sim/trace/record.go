// Package trace provides structured event recording for scheduling simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventType classifies what happened on the processor at a given tick.
type EventType string

const (
	EventArrival     EventType = "ARRIVAL"
	EventSwitchStart EventType = "SWITCH_START"
	EventSwitch      EventType = "SWITCH"
	EventExec        EventType = "EXEC"
	EventIdle        EventType = "IDLE"
	EventFinished    EventType = "FINISHED"
)

// NoPID marks an event without a process (IDLE, or a switch toward an idle CPU).
// Process ids are non-negative, so -1 never collides with a real pid.
const NoPID = -1

// Event captures a single traced occurrence. Events are immutable once recorded.
type Event struct {
	Time int64     `json:"time"`
	Type EventType `json:"event_type"`
	PID  int       `json:"pid"` // NoPID when absent
}

// HasPID reports whether the event refers to a process.
func (e Event) HasPID() bool {
	return e.PID != NoPID
}

// IsCPUEvent reports whether the event occupies the processor for its tick.
// Exactly one CPU event is recorded per simulated tick.
func (e Event) IsCPUEvent() bool {
	return e.Type == EventExec || e.Type == EventSwitch || e.Type == EventIdle
}
