package trace

// Summary aggregates statistics from a recorded event sequence.
type Summary struct {
	Counts          map[EventType]int // events per type
	ContextSwitches int               // number of SWITCH_START events
	ExecTicks       map[int]int64     // pid → ticks executed
	BusyTicks       int64             // EXEC ticks
	SwitchTicks     int64             // SWITCH ticks
	IdleTicks       int64             // IDLE ticks
}

// Summarize computes aggregate statistics from events.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(events []Event) *Summary {
	summary := &Summary{
		Counts:    make(map[EventType]int),
		ExecTicks: make(map[int]int64),
	}
	for _, e := range events {
		summary.Counts[e.Type]++
		switch e.Type {
		case EventSwitchStart:
			summary.ContextSwitches++
		case EventExec:
			summary.BusyTicks++
			summary.ExecTicks[e.PID]++
		case EventSwitch:
			summary.SwitchTicks++
		case EventIdle:
			summary.IdleTicks++
		}
	}
	return summary
}

// Segment is a maximal run of consecutive ticks with the same CPU activity.
// End is exclusive.
type Segment struct {
	Type  EventType
	PID   int
	Start int64
	End   int64
}

// Segments compresses the per-tick CPU events (EXEC, SWITCH, IDLE) into
// contiguous segments in time order. Non-CPU events are ignored.
func Segments(events []Event) []Segment {
	var segments []Segment
	for _, e := range events {
		if !e.IsCPUEvent() {
			continue
		}
		if n := len(segments); n > 0 {
			last := &segments[n-1]
			if last.Type == e.Type && last.PID == e.PID && last.End == e.Time {
				last.End = e.Time + 1
				continue
			}
		}
		segments = append(segments, Segment{Type: e.Type, PID: e.PID, Start: e.Time, End: e.Time + 1})
	}
	return segments
}
