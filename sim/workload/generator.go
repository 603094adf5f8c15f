package workload

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vance-sim/vance/sim"
)

// GenerateProcesses creates the process list described by a WorkloadSpec.
// Explicit processes are kept verbatim; generated processes receive sequential
// pids after the largest explicit pid, in arrival order.
// Deterministic given the same spec and seed. Arrivals, bursts and priorities
// draw from separate seeded streams, so adding a priority distribution to a
// group leaves its arrivals and bursts unchanged.
// Returns processes sorted by (arrival, pid).
func GenerateProcesses(spec *WorkloadSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(spec.Seed)
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrivals)
	burstRNG := rng.ForSubsystem(sim.SubsystemBursts)
	priorityRNG := rng.ForSubsystem(sim.SubsystemPriorities)

	var generated []sim.Process
	for i := range spec.Groups {
		group := &spec.Groups[i]

		arrivals := NewArrivalSampler(group.Arrival)
		bursts, err := NewValueSampler(group.Burst)
		if err != nil {
			return nil, fmt.Errorf("group %q burst distribution: %w", group.ID, err)
		}
		var priorities ValueSampler
		if group.Priority != nil {
			priorities, err = NewValueSampler(*group.Priority)
			if err != nil {
				return nil, fmt.Errorf("group %q priority distribution: %w", group.ID, err)
			}
		}

		currentTime := group.Start
		for n := 0; n < group.Count; n++ {
			if n > 0 {
				currentTime += arrivals.SampleIAT(arrivalRNG)
			}
			burst := bursts.Sample(burstRNG)
			if burst < 1 {
				burst = 1
			}
			p := sim.Process{ArrivalTime: currentTime, BurstTime: burst}
			if priorities != nil {
				p.Priority = int(priorities.Sample(priorityRNG))
			}
			generated = append(generated, p)
		}
		logrus.Debugf("workload group %q: generated %d processes", group.ID, group.Count)
	}

	// Sort by arrival time (stable sort preserves group order for ties)
	sort.SliceStable(generated, func(i, j int) bool {
		return generated[i].ArrivalTime < generated[j].ArrivalTime
	})

	nextPID := 1
	for _, p := range spec.Processes {
		if p.PID >= nextPID {
			nextPID = p.PID + 1
		}
	}
	for i := range generated {
		generated[i].PID = nextPID + i
	}

	all := make([]sim.Process, 0, len(spec.Processes)+len(generated))
	all = append(all, spec.Processes...)
	all = append(all, generated...)
	return sim.SortByArrival(all), nil
}
