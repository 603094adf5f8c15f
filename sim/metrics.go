// Aggregates per-process outcomes and simulation-wide counters into the Result
// consumed by the report package.

package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/vance-sim/vance/sim/trace"
)

// Averages holds the aggregate performance figures of a run.
type Averages struct {
	AvgWaitingTime     float64 `json:"avg_waiting_time"`    // rounded to 2 decimals
	AvgTurnaroundTime  float64 `json:"avg_turnaround_time"` // rounded to 2 decimals
	CPUUtilization     float64 `json:"cpu_utilization"`     // percent of elapsed ticks doing process work
	HardwareEfficiency float64 `json:"hardware_efficiency"` // percent of busy ticks that were not switch overhead
}

// UtilizationLabel formats CPUUtilization with one decimal, e.g. "62.5%".
func (a Averages) UtilizationLabel() string {
	return fmt.Sprintf("%.1f%%", a.CPUUtilization)
}

// EfficiencyLabel formats HardwareEfficiency with one decimal, e.g. "90.9%".
func (a Averages) EfficiencyLabel() string {
	return fmt.Sprintf("%.1f%%", a.HardwareEfficiency)
}

// Result is the read-only output of Engine.Run.
// Slices are owned by the Result; the engine keeps no reference to them.
type Result struct {
	Processes []ProcessResult `json:"individual_results"` // completion order
	Averages  Averages        `json:"averages"`
	Trace     []trace.Event   `json:"structured_trace"`
	Log       []string        `json:"log"`

	TotalTime       int64 `json:"total_time"`        // final clock value
	TotalBurst      int64 `json:"total_burst"`       // sum of all burst times
	TotalIdleTime   int64 `json:"total_idle_time"`   // ticks with nothing to run
	TotalSwitchTime int64 `json:"total_switch_time"` // ticks spent in the dispatcher
	ContextSwitches int64 `json:"context_switches"`  // changes of the running process
}

// ByPID returns a copy of the per-process results sorted by pid.
func (r *Result) ByPID() []ProcessResult {
	out := make([]ProcessResult, len(r.Processes))
	copy(out, r.Processes)
	sort.Slice(out, func(i, j int) bool { return out[i].Process.PID < out[j].Process.PID })
	return out
}

// Lookup returns the result for pid.
func (r *Result) Lookup(pid int) (ProcessResult, bool) {
	for _, pr := range r.Processes {
		if pr.Process.PID == pid {
			return pr, true
		}
	}
	return ProcessResult{}, false
}

// ComputeAverages derives the aggregate figures. Every ratio is guarded:
// no completions, no elapsed ticks, or no busy ticks all yield 0.
func ComputeAverages(results []ProcessResult, totalBurst, totalTime, switchTime int64) Averages {
	var avg Averages
	if n := len(results); n > 0 {
		var waitSum, tatSum int64
		for _, r := range results {
			waitSum += r.WaitingTime
			tatSum += r.TurnaroundTime
		}
		avg.AvgWaitingTime = round2(float64(waitSum) / float64(n))
		avg.AvgTurnaroundTime = round2(float64(tatSum) / float64(n))
	}
	if totalTime > 0 {
		avg.CPUUtilization = float64(totalBurst) / float64(totalTime) * 100
	}
	if totalBurst+switchTime > 0 {
		avg.HardwareEfficiency = float64(totalBurst) / float64(totalBurst+switchTime) * 100
	}
	return avg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (r *simulationRun) result() *Result {
	totalBurst := TotalBurst(r.processes)
	results := make([]ProcessResult, len(r.results))
	copy(results, r.results)
	return &Result{
		Processes:       results,
		Averages:        ComputeAverages(r.results, totalBurst, r.clock.Time(), r.switchTicks),
		Trace:           r.tracer.Events(),
		Log:             r.tracer.Log(),
		TotalTime:       r.clock.Time(),
		TotalBurst:      totalBurst,
		TotalIdleTime:   r.idleTicks,
		TotalSwitchTime: r.switchTicks,
		ContextSwitches: r.contextSwitches,
	}
}
