package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vance-sim/vance/sim"
)

func TestGenerateProcesses_ConstantGroup_EvenlySpaced(t *testing.T) {
	// GIVEN a constant-interval group of 4 starting at tick 2
	spec := &WorkloadSpec{Version: "1", Seed: 1, Groups: []GroupSpec{{
		ID:      "even",
		Count:   4,
		Start:   2,
		Arrival: ArrivalSpec{Process: "constant", Interval: 3},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 5}},
	}}}

	// WHEN generated
	procs, err := GenerateProcesses(spec)
	require.NoError(t, err)

	// THEN arrivals are 2, 5, 8, 11 with pids 1..4
	require.Len(t, procs, 4)
	for i, p := range procs {
		assert.Equal(t, i+1, p.PID)
		assert.Equal(t, int64(2+3*i), p.ArrivalTime)
		assert.Equal(t, int64(5), p.BurstTime)
		assert.Equal(t, 0, p.Priority)
	}
}

func TestGenerateProcesses_SameSeed_Deterministic(t *testing.T) {
	makeSpec := func(seed int64) *WorkloadSpec {
		return &WorkloadSpec{Version: "1", Seed: seed, Groups: []GroupSpec{{
			ID:       "rand",
			Count:    50,
			Arrival:  ArrivalSpec{Process: "poisson", Rate: 0.3},
			Burst:    DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 20}},
			Priority: &DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 4}},
		}}}
	}

	a, err := GenerateProcesses(makeSpec(99))
	require.NoError(t, err)
	b, err := GenerateProcesses(makeSpec(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GenerateProcesses(makeSpec(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should produce different workloads")
}

func TestGenerateProcesses_ExplicitProcesses_KeptAndPIDsContinue(t *testing.T) {
	// GIVEN explicit pids 4 and 10 alongside a generated group
	spec := &WorkloadSpec{
		Version: "1",
		Processes: []sim.Process{
			{PID: 10, BurstTime: 3, ArrivalTime: 5},
			{PID: 4, BurstTime: 2, ArrivalTime: 0, Priority: 1},
		},
		Groups: []GroupSpec{validGroup()},
	}

	procs, err := GenerateProcesses(spec)
	require.NoError(t, err)

	// THEN explicit processes survive verbatim and generated pids start at 11
	require.Len(t, procs, 5)
	byPID := map[int]sim.Process{}
	for _, p := range procs {
		byPID[p.PID] = p
	}
	assert.Equal(t, sim.Process{PID: 4, BurstTime: 2, ArrivalTime: 0, Priority: 1}, byPID[4])
	assert.Equal(t, sim.Process{PID: 10, BurstTime: 3, ArrivalTime: 5}, byPID[10])
	for _, pid := range []int{11, 12, 13} {
		assert.Contains(t, byPID, pid)
	}
	assert.True(t, sim.IsSortedByArrival(procs))
	require.NoError(t, sim.ValidateProcesses(procs))
}

func TestGenerateProcesses_ZeroBurstSample_ClampedToOne(t *testing.T) {
	spec := &WorkloadSpec{Version: "1", Groups: []GroupSpec{{
		ID:      "tiny",
		Count:   5,
		Arrival: ArrivalSpec{Process: "constant"},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 0}},
	}}}
	procs, err := GenerateProcesses(spec)
	require.NoError(t, err)
	for _, p := range procs {
		assert.Equal(t, int64(1), p.BurstTime, "pid %d", p.PID)
		assert.Equal(t, int64(0), p.ArrivalTime)
	}
}

func TestGenerateProcesses_InvalidSpec_ReturnsError(t *testing.T) {
	_, err := GenerateProcesses(&WorkloadSpec{Version: "1"})
	assert.Error(t, err)
}

func TestGenerateProcesses_AddingPriorityDist_DoesNotPerturbArrivals(t *testing.T) {
	base := &WorkloadSpec{Version: "1", Seed: 5, Groups: []GroupSpec{{
		ID:      "g",
		Count:   30,
		Arrival: ArrivalSpec{Process: "poisson", Rate: 0.5},
		Burst:   DistSpec{Type: "exponential", Params: map[string]float64{"mean": 4}},
	}}}
	withPriority := &WorkloadSpec{Version: "1", Seed: 5, Groups: []GroupSpec{base.Groups[0]}}
	withPriority.Groups[0].Priority = &DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 9}}

	a, err := GenerateProcesses(base)
	require.NoError(t, err)
	b, err := GenerateProcesses(withPriority)
	require.NoError(t, err)
	require.Len(t, b, len(a))
	varied := false
	for i := range a {
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
		assert.Equal(t, a[i].BurstTime, b[i].BurstTime)
		if b[i].Priority != 0 {
			varied = true
		}
	}
	assert.True(t, varied, "priorities should be drawn from their own stream")
}
