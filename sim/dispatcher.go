// Models the processor reassignment overhead as a fixed-duration busy period.

package sim

import (
	"fmt"

	"github.com/vance-sim/vance/sim/trace"
)

// Dispatcher is a two-state machine: Idle (remaining == 0) and Switching (remaining > 0).
// During Switching no process work happens; each Tick consumes one unit of overhead.
type Dispatcher struct {
	latency   int64 // fixed switch duration in ticks
	remaining int64 // ticks left in the current switch
	target    int   // pid awaiting activation, trace.NoPID for an idle target
}

// NewDispatcher creates an idle dispatcher. Negative latency is clamped to 0.
func NewDispatcher(latency int64) *Dispatcher {
	if latency < 0 {
		latency = 0
	}
	return &Dispatcher{latency: latency, target: trace.NoPID}
}

// Latency returns the configured switch duration.
func (d *Dispatcher) Latency() int64 { return d.latency }

// Remaining returns the ticks left in the current switch.
func (d *Dispatcher) Remaining() int64 { return d.remaining }

// Target returns the pid the in-progress (or last) switch is heading to.
func (d *Dispatcher) Target() int { return d.target }

// IsSwitching reports whether a switch is in progress.
func (d *Dispatcher) IsSwitching() bool {
	return d.remaining > 0
}

// StartSwitch begins the overhead period toward targetPID.
// A call while already Switching restarts the switch toward the new target
// and the latency is paid again in full.
func (d *Dispatcher) StartSwitch(targetPID int) {
	d.target = targetPID
	d.remaining = d.latency
}

// Tick consumes one tick of switch overhead.
// Ticking an idle dispatcher is an engine sequencing bug.
func (d *Dispatcher) Tick() error {
	if d.remaining <= 0 {
		return fmt.Errorf("%w: dispatcher ticked with no switch in progress (target %d)", ErrInvalidState, d.target)
	}
	d.remaining--
	return nil
}
