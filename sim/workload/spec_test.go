package workload

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vance-sim/vance/sim"
)

func TestLoadWorkloadSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	content := `
version: "1"
seed: 42
processes:
  - pid: 1
    burst: 5
    arrival: 0
    priority: 2
groups:
  - id: batch
    count: 10
    start: 3
    arrival:
      process: poisson
      rate: 0.5
    burst:
      type: gaussian
      params:
        mean: 6
        std_dev: 2
        min: 1
        max: 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadWorkloadSpec(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Seed != 42 {
		t.Errorf("Seed = %d, want 42", spec.Seed)
	}
	if len(spec.Processes) != 1 || spec.Processes[0].Priority != 2 {
		t.Errorf("Processes = %+v, want one process with priority 2", spec.Processes)
	}
	if len(spec.Groups) != 1 {
		t.Fatalf("len(Groups) = %d, want 1", len(spec.Groups))
	}
	g := spec.Groups[0]
	if g.Count != 10 || g.Start != 3 || g.Arrival.Rate != 0.5 {
		t.Errorf("group = %+v, unexpected values", g)
	}
	if g.Burst.Params["std_dev"] != 2 {
		t.Errorf("burst std_dev = %f, want 2", g.Burst.Params["std_dev"])
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseWorkloadSpec_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a spec with a typo'd field name
	data := []byte("seed: 1\ngroupz: []\n")

	// WHEN parsed
	_, err := ParseWorkloadSpec(data)

	// THEN strict decoding rejects it
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestParseWorkloadSpec_MissingVersion_DefaultsToOne(t *testing.T) {
	spec, err := ParseWorkloadSpec([]byte("processes:\n  - {pid: 1, burst: 2, arrival: 0}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Version != "1" {
		t.Errorf("Version = %q, want %q", spec.Version, "1")
	}
}

func TestLoadWorkloadSpec_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadWorkloadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func validGroup() GroupSpec {
	return GroupSpec{
		ID:      "g",
		Count:   3,
		Arrival: ArrivalSpec{Process: "constant", Interval: 2},
		Burst:   DistSpec{Type: "constant", Params: map[string]float64{"value": 4}},
	}
}

func TestWorkloadSpec_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *WorkloadSpec)
		wantSub string
	}{
		{"bad version", func(s *WorkloadSpec) { s.Version = "9" }, "version"},
		{"empty", func(s *WorkloadSpec) { s.Groups = nil }, "at least one"},
		{"zero count", func(s *WorkloadSpec) { s.Groups[0].Count = 0 }, "count"},
		{"negative start", func(s *WorkloadSpec) { s.Groups[0].Start = -1 }, "start"},
		{"unknown arrival", func(s *WorkloadSpec) { s.Groups[0].Arrival.Process = "bursty" }, "arrival process"},
		{"negative interval", func(s *WorkloadSpec) { s.Groups[0].Arrival.Interval = -1 }, "interval"},
		{"poisson zero rate", func(s *WorkloadSpec) { s.Groups[0].Arrival = ArrivalSpec{Process: "poisson"} }, "rate"},
		{"poisson NaN rate", func(s *WorkloadSpec) {
			s.Groups[0].Arrival = ArrivalSpec{Process: "poisson", Rate: math.NaN()}
		}, "finite"},
		{"unknown dist", func(s *WorkloadSpec) { s.Groups[0].Burst.Type = "zipf" }, "distribution type"},
		{"inf param", func(s *WorkloadSpec) { s.Groups[0].Burst.Params["value"] = math.Inf(1) }, "finite"},
		{"bad priority dist", func(s *WorkloadSpec) { s.Groups[0].Priority = &DistSpec{Type: "nope"} }, "priority"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := &WorkloadSpec{Version: "1", Groups: []GroupSpec{validGroup()}}
			tc.mutate(spec)
			err := spec.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantSub)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestWorkloadSpec_Validate_InvalidExplicitProcess_WrapsSentinel(t *testing.T) {
	spec := &WorkloadSpec{Processes: []sim.Process{{PID: 1, BurstTime: 0}}}
	err := spec.Validate()
	if !errors.Is(err, sim.ErrInvalidProcess) {
		t.Errorf("err = %v, want wrapping ErrInvalidProcess", err)
	}
}
