// Defines the Process input record and the ProcessResult produced when it finishes.
// Remaining execution is never stored on a Process; the engine tracks it by pid.

package sim

import (
	"fmt"
	"sort"
)

// Process is an immutable description of a unit of work to schedule.
type Process struct {
	PID         int   `json:"pid" yaml:"pid"`           // Unique, non-negative identity
	BurstTime   int64 `json:"burst" yaml:"burst"`       // Total execution ticks required (> 0)
	ArrivalTime int64 `json:"arrival" yaml:"arrival"`   // Tick at which the process becomes eligible (>= 0)
	Priority    int   `json:"priority" yaml:"priority"` // Lower value = more urgent. Read only by the Priority policy.
}

// Validate checks the field ranges of a single process.
func (p Process) Validate() error {
	if p.PID < 0 {
		return fmt.Errorf("%w: pid must be non-negative, got %d", ErrInvalidProcess, p.PID)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: process %d burst time must be positive, got %d", ErrInvalidProcess, p.PID, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d arrival time must be non-negative, got %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
	}
	return nil
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Burst: %d, Arrival: %d, Priority: %d)", p.PID, p.BurstTime, p.ArrivalTime, p.Priority)
}

// ProcessResult is the outcome of one process, recorded exactly once at the tick it finishes.
type ProcessResult struct {
	Process        Process `json:"process"`
	WaitingTime    int64   `json:"wait"`
	TurnaroundTime int64   `json:"turnaround"`
	CompletionTime int64   `json:"completion"`
}

// ValidateProcesses checks every process and rejects duplicate pids.
func ValidateProcesses(processes []Process) error {
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.PID] {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidProcess, p.PID)
		}
		seen[p.PID] = true
	}
	return nil
}

// SortByArrival returns a new slice ordered by (arrival, pid). The input is not modified.
func SortByArrival(processes []Process) []Process {
	sorted := make([]Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ArrivalTime != sorted[j].ArrivalTime {
			return sorted[i].ArrivalTime < sorted[j].ArrivalTime
		}
		return sorted[i].PID < sorted[j].PID
	})
	return sorted
}

// IsSortedByArrival reports whether processes are ordered by non-decreasing arrival time.
func IsSortedByArrival(processes []Process) bool {
	for i := 1; i < len(processes); i++ {
		if processes[i].ArrivalTime < processes[i-1].ArrivalTime {
			return false
		}
	}
	return true
}

// TotalBurst sums the burst times of all processes.
func TotalBurst(processes []Process) int64 {
	var total int64
	for _, p := range processes {
		total += p.BurstTime
	}
	return total
}
