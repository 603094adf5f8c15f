package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vance-sim/vance/sim"
	"github.com/vance-sim/vance/sim/report"
	"github.com/vance-sim/vance/sim/sweep"
)

var (
	comparePolicies []string
	compareQuantum  int64
	comparePreempt  bool
	compareLatency  int64
	compareMaxTicks int64
	compareWorkers  int
	compareColor    bool
)

// compareCmd runs several policies over one workload in parallel
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several scheduling policies over one workload and compare them",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		processes, err := resolveProcesses(processesPath, workloadPreset, defaultsFilePath, seedOverride(cmd))
		if err != nil {
			logrus.Fatalf("Unable to load workload: %v", err)
		}
		configs, err := compareConfigs(comparePolicies, compareQuantum, comparePreempt, sim.EngineConfig{
			DispatchLatency: compareLatency,
			MaxTicks:        compareMaxTicks,
		})
		if err != nil {
			logrus.Fatalf("Invalid comparison: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		outcomes := sweep.Run(ctx, processes, configs, sweep.Options{MaxWorkers: compareWorkers})
		if err := writeComparison(os.Stdout, outcomes, report.Options{Color: compareColor}); err != nil {
			logrus.Fatalf("Unable to render comparison: %v", err)
		}
		if best, ok := sweep.Best(outcomes); ok {
			logrus.Infof("Lowest average wait: %s (%s)", best.Config.Label, best.RunID)
		}
	},
}

// compareConfigs keeps the configurations of the named policies, in the
// canonical policy order. An empty selection keeps all of them.
func compareConfigs(names []string, quantum int64, preemptive bool, engine sim.EngineConfig) ([]sweep.Config, error) {
	if err := validateEngineConfig(engine); err != nil {
		return nil, err
	}
	all := sweep.PolicyConfigs(quantum, preemptive, engine)
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "round-robin" {
			n = "rr"
		}
		if !sim.IsValidPolicy(n) || n == "" {
			return nil, fmt.Errorf("unknown policy %q", n)
		}
		wanted[n] = true
	}
	var configs []sweep.Config
	for _, c := range all {
		if wanted[c.Policy.Name] {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

func writeComparison(w io.Writer, outcomes []sweep.Outcome, opts report.Options) error {
	rows := make([]report.ComparisonRow, len(outcomes))
	for i, o := range outcomes {
		rows[i] = report.ComparisonRow{Label: o.Config.Label, Result: o.Result, Err: o.Err}
	}
	return report.Comparison(w, rows, opts)
}

func init() {
	addWorkloadFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Policies to compare (default: all)")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", sim.DefaultQuantum, "Round-robin time slice in ticks")
	compareCmd.Flags().BoolVar(&comparePreempt, "preemptive", false, "Run the priority policy in preemptive mode")
	compareCmd.Flags().Int64Var(&compareLatency, "latency", 0, "Dispatch latency (context switch cost) in ticks")
	compareCmd.Flags().Int64Var(&compareMaxTicks, "max-ticks", 0, "Abort a run once its clock reaches this tick (0 = unlimited)")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", sweep.DefaultOptions().MaxWorkers, "Maximum concurrent runs")
	compareCmd.Flags().BoolVar(&compareColor, "color", false, "Emit ANSI colors")

	rootCmd.AddCommand(compareCmd)
}
