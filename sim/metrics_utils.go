// sim/metrics_utils.go
package sim

import (
	"math"
	"sort"

	"github.com/vance-sim/vance/sim/trace"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculatePercentile is a util function that calculates the p-th percentile of a data list
// using linear interpolation between closest ranks. data must be sorted ascending.
// Returns 0 for empty input.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if upperIdx >= n {
		return float64(data[n-1])
	}
	if lowerIdx == upperIdx {
		return float64(data[lowerIdx])
	}
	lowerVal := data[lowerIdx]
	upperVal := data[upperIdx]
	return float64(lowerVal) + float64(upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// CalculateMean is a util function that calculates the mean of a data list
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// WaitingTimes returns the waiting times of all completed processes, sorted ascending.
func (r *Result) WaitingTimes() []int64 {
	waits := make([]int64, len(r.Processes))
	for i, pr := range r.Processes {
		waits[i] = pr.WaitingTime
	}
	sort.Slice(waits, func(i, j int) bool { return waits[i] < waits[j] })
	return waits
}

// WaitPercentile returns the p-th percentile of the waiting times.
func (r *Result) WaitPercentile(p float64) float64 {
	return CalculatePercentile(r.WaitingTimes(), p)
}

// ResponseTimes returns, in pid order, the ticks each completed process waited
// between arrival and its first EXEC tick.
func (r *Result) ResponseTimes() []int64 {
	firstExec := make(map[int]int64, len(r.Processes))
	for _, e := range r.Trace {
		if e.Type != trace.EventExec {
			continue
		}
		if _, seen := firstExec[e.PID]; !seen {
			firstExec[e.PID] = e.Time
		}
	}
	out := make([]int64, 0, len(r.Processes))
	for _, pr := range r.ByPID() {
		if t, ok := firstExec[pr.Process.PID]; ok {
			out = append(out, t-pr.Process.ArrivalTime)
		}
	}
	return out
}

// AvgResponseTime is the mean of ResponseTimes, 0 when nothing completed.
func (r *Result) AvgResponseTime() float64 {
	return CalculateMean(r.ResponseTimes())
}
