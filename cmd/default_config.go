package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vance-sim/vance/sim/workload"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string                           `yaml:"version"`
	Workloads map[string]workload.WorkloadSpec `yaml:"workloads"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return &cfg, nil
}

// PresetNames returns the workload preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Workloads))
	for name := range c.Workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadPresetWorkload loads a named preset from defaults.yaml and validates it.
func loadPresetWorkload(defaultsPath, name string) (*workload.WorkloadSpec, error) {
	cfg, err := loadDefaultsConfig(defaultsPath)
	if err != nil {
		return nil, err
	}
	wl, ok := cfg.Workloads[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; available: %v", name, cfg.PresetNames())
	}
	if wl.Version == "" {
		wl.Version = "1"
	}
	if err := wl.Validate(); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return &wl, nil
}
