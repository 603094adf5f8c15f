package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vance-sim/vance/sim"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version   string        `yaml:"version"`
	Seed      int64         `yaml:"seed"`
	Processes []sim.Process `yaml:"processes,omitempty"` // explicit processes, kept verbatim
	Groups    []GroupSpec   `yaml:"groups,omitempty"`    // synthetic process groups
}

// GroupSpec describes a family of generated processes.
type GroupSpec struct {
	ID       string      `yaml:"id"`
	Count    int         `yaml:"count"`
	Start    int64       `yaml:"start,omitempty"` // arrival time of the first process
	Arrival  ArrivalSpec `yaml:"arrival"`
	Burst    DistSpec    `yaml:"burst"`
	Priority *DistSpec   `yaml:"priority,omitempty"` // nil = priority 0 for every process
}

// ArrivalSpec configures the inter-arrival process of a group.
type ArrivalSpec struct {
	Process  string  `yaml:"process"`            // "constant" or "poisson"
	Interval int64   `yaml:"interval,omitempty"` // constant: ticks between arrivals
	Rate     float64 `yaml:"rate,omitempty"`     // poisson: arrivals per tick
}

// DistSpec parameterizes an integer distribution (burst or priority).
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validArrivalProcesses = map[string]bool{
		"constant": true, "poisson": true,
	}
	validDistTypes = map[string]bool{
		"constant": true, "uniform": true, "gaussian": true, "exponential": true,
	}
	validVersions = map[string]bool{
		"": true, "1": true,
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec parses YAML workload specification bytes.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		logrus.Debugf("workload spec has no version; assuming \"1\"")
		spec.Version = "1"
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported workload spec version %q", s.Version)
	}
	if len(s.Processes) == 0 && len(s.Groups) == 0 {
		return fmt.Errorf("at least one process or group required")
	}
	if err := sim.ValidateProcesses(s.Processes); err != nil {
		return err
	}
	for i := range s.Groups {
		if err := validateGroup(&s.Groups[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateGroup(g *GroupSpec, idx int) error {
	prefix := fmt.Sprintf("group[%d]", idx)
	if g.Count <= 0 {
		return fmt.Errorf("%s: count must be positive, got %d", prefix, g.Count)
	}
	if g.Start < 0 {
		return fmt.Errorf("%s: start must be non-negative, got %d", prefix, g.Start)
	}
	if !validArrivalProcesses[g.Arrival.Process] {
		return fmt.Errorf("%s: unknown arrival process %q; valid: constant, poisson", prefix, g.Arrival.Process)
	}
	switch g.Arrival.Process {
	case "constant":
		if g.Arrival.Interval < 0 {
			return fmt.Errorf("%s: arrival interval must be non-negative, got %d", prefix, g.Arrival.Interval)
		}
	case "poisson":
		if err := validateFinitePositive(prefix+".arrival.rate", g.Arrival.Rate); err != nil {
			return err
		}
	}
	if err := validateDistSpec(prefix+".burst", &g.Burst); err != nil {
		return err
	}
	if g.Priority != nil {
		if err := validateDistSpec(prefix+".priority", g.Priority); err != nil {
			return err
		}
	}
	return nil
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: constant, uniform, gaussian, exponential", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
