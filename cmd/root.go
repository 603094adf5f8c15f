package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vance-sim/vance/sim"
	"github.com/vance-sim/vance/sim/report"
	"github.com/vance-sim/vance/sim/workload"
)

var (
	// CLI flags shared by commands that need a workload
	logLevel         string // Log verbosity level
	processesPath    string // CSV or YAML workload file
	workloadPreset   string // Named preset from defaults.yaml
	defaultsFilePath string // Path to defaults.yaml
	seed             int64  // Overrides the workload spec seed when set

	// CLI flags for run output
	showGantt bool              // Render the Gantt chart
	showAudit bool              // Print the turnaround/wait derivation per process
	showLog   bool              // Print the human-readable event log
	jsonPath  string            // Write the Result as JSON to this file
	useColor  bool              // Emit ANSI colors
	colorMap  map[string]string // Per-element color overrides
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vance",
	Short: "Tick-driven single-CPU scheduling simulator",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		processes, err := resolveProcesses(processesPath, workloadPreset, defaultsFilePath, seedOverride(cmd))
		if err != nil {
			logrus.Fatalf("Unable to load workload: %v", err)
		}
		policyCfg, engineCfg, err := resolveSchedulerConfig(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid scheduler configuration: %v", err)
		}
		opts, err := renderOptions()
		if err != nil {
			logrus.Fatalf("Invalid color options: %v", err)
		}

		res, err := runSimulation(os.Stdout, processes, policyCfg, engineCfg, opts, outputSelection{
			Gantt: showGantt,
			Audit: showAudit,
			Log:   showLog,
		})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if jsonPath != "" {
			if err := report.SaveJSON(res, jsonPath); err != nil {
				logrus.Fatalf("Unable to write results: %v", err)
			}
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// seedOverride returns the --seed value only when the user passed it, so the
// seed inside a workload spec governs otherwise.
func seedOverride(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	s := seed
	return &s
}

// resolveProcesses builds the process list from exactly one of a workload file
// or a named preset. CSV files ignore the seed override.
func resolveProcesses(path, preset, defaultsPath string, seedOverride *int64) ([]sim.Process, error) {
	var spec *workload.WorkloadSpec
	var err error
	switch {
	case path != "" && preset != "":
		return nil, fmt.Errorf("--processes and --workload-preset are mutually exclusive")
	case preset != "":
		spec, err = loadPresetWorkload(defaultsPath, preset)
	case path == "":
		return nil, fmt.Errorf("one of --processes or --workload-preset is required")
	case seedOverride == nil || strings.EqualFold(filepath.Ext(path), ".csv"):
		return workload.LoadProcesses(path)
	default:
		spec, err = workload.LoadWorkloadSpec(path)
	}
	if err != nil {
		return nil, err
	}
	if seedOverride != nil {
		logrus.Infof("Overriding workload seed %d with --seed %d", spec.Seed, *seedOverride)
		spec.Seed = *seedOverride
	}
	return workload.GenerateProcesses(spec)
}

// addSchedulerFlags registers the policy and engine flags on fs.
func addSchedulerFlags(fs *pflag.FlagSet) {
	fs.String("policy", "fcfs", "Scheduling policy ("+strings.Join(sim.PolicyNames, ", ")+")")
	fs.Int64("quantum", sim.DefaultQuantum, "Round-robin time slice in ticks")
	fs.Bool("preemptive", false, "Let the priority policy preempt the running process")
	fs.Int64("latency", 0, "Dispatch latency (context switch cost) in ticks")
	fs.Int64("max-ticks", 0, "Abort once the clock reaches this tick (0 = unlimited)")
	fs.String("config", "", "Path to a YAML scheduler configuration")
}

// resolveSchedulerConfig layers flag defaults, then the YAML bundle, then any
// flag the user set explicitly.
func resolveSchedulerConfig(fs *pflag.FlagSet) (sim.PolicyConfig, sim.EngineConfig, error) {
	var policy sim.PolicyConfig
	var engine sim.EngineConfig
	policy.Name, _ = fs.GetString("policy")
	policy.Quantum, _ = fs.GetInt64("quantum")
	policy.Preemptive, _ = fs.GetBool("preemptive")
	engine.DispatchLatency, _ = fs.GetInt64("latency")
	engine.MaxTicks, _ = fs.GetInt64("max-ticks")

	if path, _ := fs.GetString("config"); path != "" {
		bundle, err := sim.LoadSchedulerBundle(path)
		if err != nil {
			return policy, engine, err
		}
		if err := bundle.Validate(); err != nil {
			return policy, engine, fmt.Errorf("%s: %w", path, err)
		}
		bundle.ApplyTo(&policy, &engine)
		logrus.Infof("Loaded scheduler configuration from %s", path)

		if fs.Changed("policy") {
			policy.Name, _ = fs.GetString("policy")
		}
		if fs.Changed("quantum") {
			policy.Quantum, _ = fs.GetInt64("quantum")
		}
		if fs.Changed("preemptive") {
			policy.Preemptive, _ = fs.GetBool("preemptive")
		}
		if fs.Changed("latency") {
			engine.DispatchLatency, _ = fs.GetInt64("latency")
		}
		if fs.Changed("max-ticks") {
			engine.MaxTicks, _ = fs.GetInt64("max-ticks")
		}
	}

	if err := policy.Validate(); err != nil {
		return policy, engine, err
	}
	return policy, engine, validateEngineConfig(engine)
}

// validateEngineConfig rejects values NewEngine would otherwise clamp or ignore.
func validateEngineConfig(engine sim.EngineConfig) error {
	if engine.DispatchLatency < 0 {
		return fmt.Errorf("latency must be non-negative, got %d", engine.DispatchLatency)
	}
	if engine.MaxTicks < 0 {
		return fmt.Errorf("max-ticks must be non-negative, got %d", engine.MaxTicks)
	}
	return nil
}

func renderOptions() (report.Options, error) {
	theme, err := report.ThemeFromMap(colorMap)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{Color: useColor, Theme: theme}, nil
}

type outputSelection struct {
	Gantt bool
	Audit bool
	Log   bool
}

// runSimulation runs one engine and writes the selected reports to w.
func runSimulation(w io.Writer, processes []sim.Process, policyCfg sim.PolicyConfig, engineCfg sim.EngineConfig, opts report.Options, sel outputSelection) (*sim.Result, error) {
	logrus.Infof("Running %s over %d processes (latency %d)", policyCfg.Name, len(processes), engineCfg.DispatchLatency)
	res, err := sim.NewEngine(sim.NewPolicy(policyCfg), engineCfg).Run(processes)
	if err != nil {
		return nil, err
	}

	if sel.Log {
		for _, line := range res.Log {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return nil, err
			}
		}
	}
	if sel.Gantt {
		if err := report.Gantt(w, res, opts); err != nil {
			return nil, err
		}
	}
	if err := report.Summary(w, res, opts); err != nil {
		return nil, err
	}
	if sel.Audit {
		if err := report.Audit(w, res, opts); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// addWorkloadFlags registers the flags that select a workload.
func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&processesPath, "processes", "", "Path to a process CSV (pid,burst,arrival[,priority]) or YAML workload spec")
	cmd.Flags().StringVar(&workloadPreset, "workload-preset", "", "Named workload preset from defaults.yaml")
	cmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic workload generation (overrides the spec seed when set)")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addWorkloadFlags(runCmd)
	addSchedulerFlags(runCmd.Flags())
	runCmd.Flags().BoolVar(&showGantt, "gantt", true, "Render the Gantt chart")
	runCmd.Flags().BoolVar(&showAudit, "audit", false, "Print the turnaround and wait derivation per process")
	runCmd.Flags().BoolVar(&showLog, "show-log", false, "Print the event log")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "Write the full result as JSON to this file")
	runCmd.Flags().BoolVar(&useColor, "color", false, "Emit ANSI colors")
	runCmd.Flags().StringToStringVar(&colorMap, "colors", nil, "Color overrides, e.g. exec=blue,wait=yellow,switch=red,idle=dim")

	rootCmd.AddCommand(runCmd)
}
