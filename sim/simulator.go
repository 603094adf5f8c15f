// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vance-sim/vance/sim/trace"
)

// EngineConfig groups the engine parameters that are independent of the policy.
type EngineConfig struct {
	DispatchLatency int64 // context switch overhead in ticks (0 = instantaneous, negative clamps to 0)
	MaxTicks        int64 // abort with ErrTickLimitExceeded once the clock reaches this value (0 = unlimited)
}

// Engine runs tick-driven simulations of one SchedulerPolicy.
// The Engine itself holds configuration only: each Run builds its own Clock,
// Dispatcher, Tracer and ready queue, so repeated runs are independent.
type Engine struct {
	Policy SchedulerPolicy
	Config EngineConfig
}

// NewEngine creates an Engine for the given policy.
func NewEngine(policy SchedulerPolicy, cfg EngineConfig) *Engine {
	if policy == nil {
		panic("NewEngine: policy must not be nil")
	}
	if cfg.DispatchLatency < 0 {
		cfg.DispatchLatency = 0
	}
	return &Engine{Policy: policy, Config: cfg}
}

// Run simulates processes to completion and returns the aggregated result.
// The input slice is neither reordered nor retained.
func (e *Engine) Run(processes []Process) (*Result, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}

	logrus.Infof("Starting simulation with %d processes, policy=%T, dispatch latency=%d",
		len(processes), e.Policy, e.Config.DispatchLatency)

	r := newSimulationRun(e, processes)
	if err := r.loop(); err != nil {
		return nil, err
	}
	logrus.Infof("[tick %07d] Simulation ended", r.clock.Time())
	return r.result(), nil
}

// simulationRun is the transient state of one Run call. It is never shared.
type simulationRun struct {
	policy     SchedulerPolicy
	maxTicks   int64
	clock      *Clock
	dispatcher *Dispatcher
	tracer     *trace.Tracer

	processes []Process        // sorted copy of the input
	byPID     map[int]*Process // canonical pointers into processes
	incoming  []*Process       // not yet arrived, in (arrival, pid) order
	ready     *ReadyQueue      // arrived, not running, not finished
	remaining map[int]int64    // pid → execution ticks still owed
	current   *Process         // occupying the processor
	pending   *Process         // target of the in-progress switch
	runtime   int64            // ticks current has run since dispatch

	results         []ProcessResult
	idleTicks       int64
	switchTicks     int64
	contextSwitches int64
}

func newSimulationRun(e *Engine, processes []Process) *simulationRun {
	sorted := SortByArrival(processes)
	r := &simulationRun{
		policy:     e.Policy,
		maxTicks:   e.Config.MaxTicks,
		clock:      &Clock{},
		dispatcher: NewDispatcher(e.Config.DispatchLatency),
		tracer:     trace.NewTracer(),
		processes:  sorted,
		byPID:      make(map[int]*Process, len(sorted)),
		incoming:   make([]*Process, 0, len(sorted)),
		ready:      &ReadyQueue{},
		remaining:  make(map[int]int64, len(sorted)),
		results:    make([]ProcessResult, 0, len(sorted)),
	}
	for i := range r.processes {
		p := &r.processes[i]
		r.byPID[p.PID] = p
		r.incoming = append(r.incoming, p)
		r.remaining[p.PID] = p.BurstTime
	}
	return r
}

// active reports whether any work or overhead is left.
func (r *simulationRun) active() bool {
	return len(r.incoming) > 0 || r.ready.Len() > 0 || r.current != nil || r.dispatcher.IsSwitching()
}

func (r *simulationRun) loop() error {
	for r.active() {
		now := r.clock.Time()
		if r.maxTicks > 0 && now >= r.maxTicks {
			return fmt.Errorf("%w: clock reached %d with %d of %d processes unfinished",
				ErrTickLimitExceeded, now, len(r.processes)-len(r.results), len(r.processes))
		}

		// 1. Arrivals join the back of the ready queue in (arrival, pid) order
		r.admitArrivals(now)

		// 2. Decision, never while a switch is in progress
		if !r.dispatcher.IsSwitching() {
			if err := r.decide(now); err != nil {
				return err
			}
		}

		// 3. One tick of switch overhead, work, or idleness
		if err := r.step(now); err != nil {
			return err
		}

		// 4. Advance the clock
		r.clock.Tick()
	}
	return nil
}

func (r *simulationRun) admitArrivals(now int64) {
	for len(r.incoming) > 0 && r.incoming[0].ArrivalTime <= now {
		p := r.incoming[0]
		r.incoming = r.incoming[1:]
		r.ready.Enqueue(p)
		r.tracer.Record(now, trace.EventArrival, p.PID, fmt.Sprintf("Process %d arrived.", p.PID))
	}
}

func (r *simulationRun) decide(now int64) error {
	before := r.ready.PIDs()
	prev := r.current
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		running := "none"
		if prev != nil {
			running = fmt.Sprintf("P%d", prev.PID)
		}
		logrus.Debugf("[tick %07d] decide: ready=%s current=%s", now, r.ready, running)
	}

	next := r.policy.Decide(r.ready, r.current, r.runtime, r.remaining)
	next, err := r.checkDecision(before, prev, next)
	if err != nil {
		return err
	}
	if next == prev {
		return nil
	}

	r.contextSwitches++
	if r.dispatcher.Latency() == 0 {
		r.current = next
		r.runtime = 0
		return nil
	}

	target := trace.NoPID
	label := "Idle"
	if next != nil {
		target = next.PID
		label = fmt.Sprintf("P%d", next.PID)
	}
	r.dispatcher.StartSwitch(target)
	r.pending = next
	r.current = nil
	r.runtime = 0
	r.tracer.Record(now, trace.EventSwitchStart, target, "STARTING SWITCH to "+label)
	return nil
}

// checkDecision enforces the SchedulerPolicy contract and maps the returned
// process back to the engine's canonical pointer.
func (r *simulationRun) checkDecision(before []int, prev, next *Process) (*Process, error) {
	expected := append([]int(nil), before...)
	if prev != nil {
		expected = append(expected, prev.PID)
	}

	if next == nil {
		if len(expected) > 0 {
			return nil, fmt.Errorf("%w: policy %T idled the processor with %d runnable processes",
				ErrInvalidDecision, r.policy, len(expected))
		}
		return nil, nil
	}

	canonical, ok := r.byPID[next.PID]
	if !ok || !containsPID(expected, next.PID) {
		return nil, fmt.Errorf("%w: policy %T chose process %d which is neither ready nor current",
			ErrInvalidDecision, r.policy, next.PID)
	}

	// The queue after the call must hold exactly the runnable set minus the choice.
	expected = removePID(expected, next.PID)
	after := r.ready.PIDs()
	sort.Ints(expected)
	sort.Ints(after)
	if !equalPIDs(expected, after) {
		return nil, fmt.Errorf("%w: policy %T left ready queue %v, want %v",
			ErrInvalidDecision, r.policy, after, expected)
	}
	return canonical, nil
}

func (r *simulationRun) step(now int64) error {
	switch {
	case r.dispatcher.IsSwitching():
		r.switchTicks++
		r.tracer.Record(now, trace.EventSwitch, r.dispatcher.Target(), "Dispatcher busy...")
		if err := r.dispatcher.Tick(); err != nil {
			return err
		}
		if !r.dispatcher.IsSwitching() {
			r.current = r.pending
			r.pending = nil
			r.runtime = 0
		}

	case r.current != nil:
		pid := r.current.PID
		if r.remaining[pid] <= 0 {
			return fmt.Errorf("%w: process %d scheduled with remaining time %d", ErrInvariantViolation, pid, r.remaining[pid])
		}
		r.tracer.Record(now, trace.EventExec, pid, "")
		r.remaining[pid]--
		r.runtime++

		if r.remaining[pid] == 0 {
			// The unit of work ends at the end of this tick.
			finish := now + 1
			res, err := r.recordCompletion(*r.current, finish)
			if err != nil {
				return err
			}
			r.results = append(r.results, res)
			r.tracer.Record(finish, trace.EventFinished, pid, fmt.Sprintf("Process %d finished.", pid))
			r.current = nil
			r.runtime = 0
		}

	default:
		r.idleTicks++
		r.tracer.Record(now, trace.EventIdle, trace.NoPID, "CPU Idle.")
	}
	return nil
}

// recordCompletion computes turnaround and waiting time for a finished process.
// Negative values mean the engine or policy is broken and are never clamped.
func (r *simulationRun) recordCompletion(p Process, finish int64) (ProcessResult, error) {
	turnaround := finish - p.ArrivalTime
	wait := turnaround - p.BurstTime
	if turnaround < 0 || wait < 0 {
		return ProcessResult{}, fmt.Errorf("%w: process %d finished at %d with turnaround %d and wait %d",
			ErrInvariantViolation, p.PID, finish, turnaround, wait)
	}
	return ProcessResult{
		Process:        p,
		WaitingTime:    wait,
		TurnaroundTime: turnaround,
		CompletionTime: finish,
	}, nil
}

func containsPID(pids []int, pid int) bool {
	for _, p := range pids {
		if p == pid {
			return true
		}
	}
	return false
}

func removePID(pids []int, pid int) []int {
	for i, p := range pids {
		if p == pid {
			return append(pids[:i:i], pids[i+1:]...)
		}
	}
	return pids
}

func equalPIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
