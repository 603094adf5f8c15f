// Package testutil provides shared test infrastructure for the vance simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/, sim/sweep/ and sim/report/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single hand-verified scheduling scenario.
type GoldenTestCase struct {
	Name            string          `json:"name"`
	Policy          string          `json:"policy"`
	Quantum         int64           `json:"quantum"`
	Preemptive      bool            `json:"preemptive"`
	DispatchLatency int64           `json:"dispatch_latency"`
	Processes       []GoldenProcess `json:"processes"`
	Metrics         GoldenMetrics   `json:"metrics"`
}

// GoldenProcess mirrors the process input record without importing sim.
type GoldenProcess struct {
	PID      int   `json:"pid"`
	Burst    int64 `json:"burst"`
	Arrival  int64 `json:"arrival"`
	Priority int   `json:"priority"`
}

// GoldenMetrics represents the expected outcome of a golden test case.
type GoldenMetrics struct {
	// Exact match counters
	TotalTime       int64 `json:"total_time"`
	TotalIdleTime   int64 `json:"total_idle_time"`
	TotalSwitchTime int64 `json:"total_switch_time"`
	ContextSwitches int64 `json:"context_switches"`

	// Per-process outcomes, keyed by pid
	Completions map[int]int64 `json:"completions"`
	Waits       map[int]int64 `json:"waits"`

	// Aggregates (rounded as the engine rounds them)
	AvgWaitingTime     float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime  float64 `json:"avg_turnaround_time"`
	CPUUtilization     float64 `json:"cpu_utilization"`
	HardwareEfficiency float64 `json:"hardware_efficiency"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
