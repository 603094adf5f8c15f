package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vance-sim/vance/sim/workload"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert process lists and presets to YAML workload specs",
	Long:  "Convert process CSV files and named presets to WorkloadSpec YAML. Output is written to stdout for piping.",
}

// --- vance convert csv ---

var csvPath string

var convertCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Convert a process CSV file to a workload spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.ConvertCSV(csvPath)
		if err != nil {
			logrus.Fatalf("CSV conversion failed: %v", err)
		}
		writeSpecToStdout(spec)
	},
}

// --- vance convert preset ---

var (
	presetName         string
	presetSeed         int64
	presetDefaultsPath string
)

var convertPresetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Convert a named workload preset to a workload spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadPresetWorkload(presetDefaultsPath, presetName)
		if err != nil {
			logrus.Fatalf("Preset conversion failed: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			spec.Seed = presetSeed
		}
		writeSpecToStdout(spec)
	},
}

// writeSpecToStdout marshals a WorkloadSpec to YAML and writes to stdout.
func writeSpecToStdout(spec *workload.WorkloadSpec) {
	if err := writeSpec(os.Stdout, spec); err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
}

func writeSpec(w io.Writer, spec *workload.WorkloadSpec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}

func init() {
	convertCSVCmd.Flags().StringVar(&csvPath, "file", "", "Path to process CSV file")
	_ = convertCSVCmd.MarkFlagRequired("file")

	convertPresetCmd.Flags().StringVar(&presetName, "name", "", "Preset name (e.g., textbook, interactive)")
	convertPresetCmd.Flags().Int64Var(&presetSeed, "seed", 42, "Override the preset seed")
	convertPresetCmd.Flags().StringVar(&presetDefaultsPath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	_ = convertPresetCmd.MarkFlagRequired("name")

	convertCmd.AddCommand(convertCSVCmd)
	convertCmd.AddCommand(convertPresetCmd)

	rootCmd.AddCommand(convertCmd)
}
