package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vance-sim/vance/sim"
)

// Summary prints the per-process results table followed by the aggregate figures.
func Summary(w io.Writer, res *sim.Result, opts Options) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", opts.paint("PERFORMANCE SUMMARY", "bold")); err != nil {
		return err
	}

	rows := make([][]string, 0, len(res.Processes))
	for _, pr := range res.ByPID() {
		rows = append(rows, []string{
			pidLabel(pr.Process.PID),
			strconv.FormatInt(pr.Process.ArrivalTime, 10),
			strconv.FormatInt(pr.Process.BurstTime, 10),
			strconv.Itoa(pr.Process.Priority),
			strconv.FormatInt(pr.WaitingTime, 10),
			strconv.FormatInt(pr.TurnaroundTime, 10),
			strconv.FormatInt(pr.CompletionTime, 10),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Wait", "TAT", "Finish"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Total\n%s", humanize.Comma(res.TotalBurst)),
		"",
		fmt.Sprintf("Average\n%.2f", res.Averages.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", res.Averages.AvgTurnaroundTime),
		fmt.Sprintf("Elapsed\n%s", humanize.Comma(res.TotalTime))})
	table.Render()

	lines := []string{
		fmt.Sprintf("Average Waiting Time:    %s", opts.paint(fmt.Sprintf("%.2f", res.Averages.AvgWaitingTime), "green")),
		fmt.Sprintf("Average Turnaround Time: %s", opts.paint(fmt.Sprintf("%.2f", res.Averages.AvgTurnaroundTime), "green")),
		fmt.Sprintf("Hardware Efficiency:     %s (Actual Work / Work + Switch Overhead)", opts.paint(res.Averages.EfficiencyLabel(), "cyan")),
		fmt.Sprintf("CPU Utilization:         %s (Actual Work / Total Time)", opts.paint(res.Averages.UtilizationLabel(), "cyan")),
		fmt.Sprintf("Context Switches:        %s (%s switch ticks, %s idle ticks)",
			humanize.Comma(res.ContextSwitches), humanize.Comma(res.TotalSwitchTime), humanize.Comma(res.TotalIdleTime)),
	}
	return writeLines(w, lines)
}

// Audit prints the turnaround and waiting time derivation for every process.
func Audit(w io.Writer, res *sim.Result, opts Options) error {
	lines := []string{"", opts.paint("MATHEMATICAL AUDIT", "bold")}
	for _, pr := range res.ByPID() {
		lines = append(lines,
			opts.paint(pidLabel(pr.Process.PID), "magenta")+":",
			fmt.Sprintf("  └─ Turnaround: %d (End) - %d (Start) = %s",
				pr.CompletionTime, pr.Process.ArrivalTime, opts.paint(strconv.FormatInt(pr.TurnaroundTime, 10), "white")),
			fmt.Sprintf("  └─ Wait:       %d (TAT) - %d (Burst) = %s",
				pr.TurnaroundTime, pr.Process.BurstTime, opts.paint(strconv.FormatInt(pr.WaitingTime, 10), "white")),
		)
	}
	return writeLines(w, lines)
}
