package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchedulerBundle holds the scheduler configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" and do not override CLI values.
// String fields use empty string for "not set".
type SchedulerBundle struct {
	Policy          PolicyBlock `yaml:"policy"`
	DispatchLatency *int64      `yaml:"dispatch_latency"`
	MaxTicks        *int64      `yaml:"max_ticks"`
}

// PolicyBlock holds the policy section of a SchedulerBundle.
type PolicyBlock struct {
	Name       string `yaml:"name"`
	Quantum    *int64 `yaml:"quantum"`
	Preemptive *bool  `yaml:"preemptive"`
}

// LoadSchedulerBundle reads and parses a YAML scheduler configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSchedulerBundle(path string) (*SchedulerBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheduler config: %w", err)
	}
	var bundle SchedulerBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing scheduler config: %w", err)
	}
	return &bundle, nil
}

// Validate checks the policy name and parameter ranges in the bundle.
func (b *SchedulerBundle) Validate() error {
	if !IsValidPolicy(b.Policy.Name) {
		return fmt.Errorf("unknown policy %q", b.Policy.Name)
	}
	if b.Policy.Quantum != nil && *b.Policy.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", *b.Policy.Quantum)
	}
	if b.DispatchLatency != nil && *b.DispatchLatency < 0 {
		return fmt.Errorf("dispatch_latency must be non-negative, got %d", *b.DispatchLatency)
	}
	if b.MaxTicks != nil && *b.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", *b.MaxTicks)
	}
	return nil
}

// ApplyTo overlays the values set in the bundle onto policy and engine configs.
func (b *SchedulerBundle) ApplyTo(policy *PolicyConfig, engine *EngineConfig) {
	if b.Policy.Name != "" {
		policy.Name = b.Policy.Name
	}
	if b.Policy.Quantum != nil {
		policy.Quantum = *b.Policy.Quantum
	}
	if b.Policy.Preemptive != nil {
		policy.Preemptive = *b.Policy.Preemptive
	}
	if b.DispatchLatency != nil {
		engine.DispatchLatency = *b.DispatchLatency
	}
	if b.MaxTicks != nil {
		engine.MaxTicks = *b.MaxTicks
	}
}
