package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vance-sim/vance/sim"
)

// ComparisonRow is one configuration in a comparison table.
// Exactly one of Result and Err is set.
type ComparisonRow struct {
	Label  string
	Result *sim.Result
	Err    error
}

// Comparison prints one row per configuration, in the given order. The lowest
// average waiting time is marked with '*'.
func Comparison(w io.Writer, rows []ComparisonRow, opts Options) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", opts.paint("POLICY COMPARISON", "bold")); err != nil {
		return err
	}

	best := -1
	for i, row := range rows {
		if row.Err != nil || row.Result == nil {
			continue
		}
		if best < 0 || row.Result.Averages.AvgWaitingTime < rows[best].Result.Averages.AvgWaitingTime {
			best = i
		}
	}

	data := make([][]string, 0, len(rows))
	for i, row := range rows {
		if row.Err != nil || row.Result == nil {
			msg := "no result"
			if row.Err != nil {
				msg = row.Err.Error()
			}
			data = append(data, []string{row.Label, "error: " + msg, "-", "-", "-", "-", "-", "-", "-"})
			continue
		}
		res := row.Result
		label := row.Label
		if i == best {
			label = opts.paint(label+" *", "green")
		}
		data = append(data, []string{
			label,
			fmt.Sprintf("%.2f", res.Averages.AvgWaitingTime),
			fmt.Sprintf("%.2f", res.WaitPercentile(95)),
			fmt.Sprintf("%.2f", res.AvgResponseTime()),
			fmt.Sprintf("%.2f", res.Averages.AvgTurnaroundTime),
			res.Averages.UtilizationLabel(),
			res.Averages.EfficiencyLabel(),
			humanize.Comma(res.ContextSwitches),
			humanize.Comma(res.TotalTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "P95 Wait", "Avg Response", "Avg TAT", "Utilization", "Efficiency", "Switches", "Elapsed"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
	return nil
}
