package workload

import (
	"fmt"

	"github.com/vance-sim/vance/sim"
)

// ConvertCSV loads a process CSV and wraps it as a WorkloadSpec of explicit processes.
func ConvertCSV(path string) (*WorkloadSpec, error) {
	processes, err := LoadProcessesCSV(path)
	if err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, fmt.Errorf("converting %s: %w", path, sim.ErrEmptyInput)
	}
	return &WorkloadSpec{Version: "1", Processes: sim.SortByArrival(processes)}, nil
}

// ComposeSpecs merges several specs into one. Explicit processes and groups are
// concatenated in input order; the seed of the first spec is kept.
// Duplicate pids or group ids across specs are rejected.
func ComposeSpecs(specs []*WorkloadSpec) (*WorkloadSpec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one spec file required")
	}

	merged := &WorkloadSpec{
		Version: "1",
		Seed:    specs[0].Seed,
	}

	pids := make(map[int]bool)
	groups := make(map[string]bool)
	for i, s := range specs {
		for _, p := range s.Processes {
			if pids[p.PID] {
				return nil, fmt.Errorf("spec %d: %w: duplicate pid %d", i, sim.ErrInvalidProcess, p.PID)
			}
			pids[p.PID] = true
			merged.Processes = append(merged.Processes, p)
		}
		for _, g := range s.Groups {
			if g.ID != "" && groups[g.ID] {
				return nil, fmt.Errorf("spec %d: duplicate group id %q", i, g.ID)
			}
			groups[g.ID] = true
			merged.Groups = append(merged.Groups, g)
		}
	}
	return merged, nil
}
