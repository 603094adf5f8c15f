package sim

import (
	"fmt"
)

// SchedulerPolicy decides which process occupies the processor at every tick.
//
// The engine lends its ReadyQueue for the duration of one call: the policy pops
// the process it selects and re-enqueues a current process it preempts.
// runtime is how long current has run since it was last dispatched; the engine
// owns that counter and passes it in each tick. remaining maps pid to the
// execution ticks still owed and MUST NOT be modified.
//
// Decide returns nil only when the ready queue is empty and nothing is current.
type SchedulerPolicy interface {
	Decide(ready *ReadyQueue, current *Process, runtime int64, remaining map[int]int64) *Process
}

// byArrival orders by arrival time, then pid.
func byArrival(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

// FCFS runs processes to completion in order of arrival.
type FCFS struct{}

func (f *FCFS) Decide(ready *ReadyQueue, current *Process, _ int64, _ map[int]int64) *Process {
	if current != nil {
		return current
	}
	return ready.PopMin(byArrival)
}

// SJF is non-preemptive shortest job first, keyed on total burst time.
// Warning: SJF can starve long processes under sustained arrivals.
type SJF struct{}

func (s *SJF) Decide(ready *ReadyQueue, current *Process, _ int64, _ map[int]int64) *Process {
	if current != nil {
		return current
	}
	return ready.PopMin(func(a, b *Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return byArrival(a, b)
	})
}

// STCF is preemptive shortest time-to-completion first, keyed on remaining time.
// A preempted process goes to the back of the ready queue.
type STCF struct{}

func (s *STCF) Decide(ready *ReadyQueue, current *Process, _ int64, remaining map[int]int64) *Process {
	less := func(a, b *Process) bool {
		if remaining[a.PID] != remaining[b.PID] {
			return remaining[a.PID] < remaining[b.PID]
		}
		return byArrival(a, b)
	}
	return preemptBy(ready, current, less)
}

// RoundRobin rotates the processor between ready processes every Quantum ticks.
type RoundRobin struct {
	Quantum int64
}

func (r *RoundRobin) Decide(ready *ReadyQueue, current *Process, runtime int64, _ map[int]int64) *Process {
	if current != nil {
		if runtime < r.Quantum || ready.Len() == 0 {
			return current
		}
		ready.Enqueue(current)
	}
	return ready.Dequeue()
}

// Priority selects the most urgent process (lowest Priority value), then by
// arrival and pid. With Preemptive set, a more urgent arrival displaces the
// running process; otherwise selection only happens when the processor is free.
// Warning: low-urgency processes can starve.
type Priority struct {
	Preemptive bool
}

func (p *Priority) Decide(ready *ReadyQueue, current *Process, _ int64, _ map[int]int64) *Process {
	less := func(a, b *Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return byArrival(a, b)
	}
	if !p.Preemptive {
		if current != nil {
			return current
		}
		return ready.PopMin(less)
	}
	return preemptBy(ready, current, less)
}

// preemptBy picks the minimum of ready ∪ {current} under less.
// When a queued process wins, current (if any) is re-enqueued at the back.
func preemptBy(ready *ReadyQueue, current *Process, less func(a, b *Process) bool) *Process {
	if current == nil {
		return ready.PopMin(less)
	}
	best := current
	for _, p := range ready.Items() {
		if less(p, best) {
			best = p
		}
	}
	if best == current {
		return current
	}
	ready.Remove(best.PID)
	ready.Enqueue(current)
	return best
}

// PolicyConfig selects and parameterizes a SchedulerPolicy.
type PolicyConfig struct {
	Name       string // "fcfs" (default), "sjf", "stcf", "rr" / "round-robin", "priority"
	Quantum    int64  // round-robin time slice in ticks (must be > 0 for rr)
	Preemptive bool   // priority policy only
}

// DefaultQuantum is the round-robin time slice used when none is configured.
const DefaultQuantum = 2

// ValidPolicies is the set of recognized policy names.
// Shared by IsValidPolicy, SchedulerBundle.Validate and NewPolicy.
var ValidPolicies = map[string]bool{"": true, "fcfs": true, "sjf": true, "stcf": true, "rr": true, "round-robin": true, "priority": true}

// PolicyNames lists the canonical policy names in display order.
var PolicyNames = []string{"fcfs", "sjf", "stcf", "rr", "priority"}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// Validate checks the policy name and its parameters.
func (c PolicyConfig) Validate() error {
	if !IsValidPolicy(c.Name) {
		return fmt.Errorf("unknown policy %q; valid: fcfs, sjf, stcf, rr, priority", c.Name)
	}
	if (c.Name == "rr" || c.Name == "round-robin") && c.Quantum <= 0 {
		return fmt.Errorf("round-robin quantum must be positive, got %d", c.Quantum)
	}
	return nil
}

// NewPolicy creates a SchedulerPolicy from its configuration.
// Empty name defaults to FCFS (for CLI flag default compatibility).
// Panics on unrecognized names or an invalid quantum.
func NewPolicy(cfg PolicyConfig) SchedulerPolicy {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	switch cfg.Name {
	case "", "fcfs":
		return &FCFS{}
	case "sjf":
		return &SJF{}
	case "stcf":
		return &STCF{}
	case "rr", "round-robin":
		return &RoundRobin{Quantum: cfg.Quantum}
	case "priority":
		return &Priority{Preemptive: cfg.Preemptive}
	default:
		panic(fmt.Sprintf("unhandled policy %q", cfg.Name))
	}
}
