package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vance-sim/vance/sim/workload"
)

var composeFromPaths []string

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge multiple workload specs into one",
	Long:  "Load multiple WorkloadSpec YAML files and merge their explicit processes and groups. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		merged, err := composeFiles(composeFromPaths)
		if err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
		writeSpecToStdout(merged)
	},
}

func composeFiles(paths []string) (*workload.WorkloadSpec, error) {
	var specs []*workload.WorkloadSpec
	for _, path := range paths {
		spec, err := workload.LoadWorkloadSpec(path)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	merged, err := workload.ComposeSpecs(specs)
	if err != nil {
		return nil, err
	}
	return merged, merged.Validate()
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeFromPaths, "from", nil, "Path to WorkloadSpec YAML file (can be repeated)")
	_ = composeCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(composeCmd)
}
