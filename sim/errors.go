package sim

import "errors"

var (
	// ErrEmptyInput is returned by Engine.Run when no processes are given.
	ErrEmptyInput = errors.New("process list is empty")

	// ErrInvalidProcess is returned for malformed process records or duplicate pids.
	ErrInvalidProcess = errors.New("invalid process")

	// ErrInvalidState signals an engine sequencing bug, e.g. ticking an idle dispatcher.
	ErrInvalidState = errors.New("invalid dispatcher state")

	// ErrInvalidDecision signals a policy that broke the SchedulerPolicy contract.
	ErrInvalidDecision = errors.New("invalid scheduling decision")

	// ErrInvariantViolation signals a negative waiting or turnaround time.
	ErrInvariantViolation = errors.New("simulation invariant violated")

	// ErrTickLimitExceeded is returned when a run hits EngineConfig.MaxTicks.
	ErrTickLimitExceeded = errors.New("tick limit exceeded")
)
