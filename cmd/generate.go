package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vance-sim/vance/sim/workload"
)

// generateCmd materializes a workload as a process CSV
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the process list of a workload spec or preset as CSV",
	Long:  "Expand a YAML workload spec or named preset into concrete processes and write them as CSV to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		processes, err := resolveProcesses(processesPath, workloadPreset, defaultsFilePath, seedOverride(cmd))
		if err != nil {
			logrus.Fatalf("Unable to generate workload: %v", err)
		}
		if err := workload.WriteProcessesCSV(os.Stdout, processes); err != nil {
			logrus.Fatalf("Unable to write CSV: %v", err)
		}
	},
}

func init() {
	addWorkloadFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
