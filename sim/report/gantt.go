package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vance-sim/vance/sim"
	"github.com/vance-sim/vance/sim/trace"
)

const (
	execGlyph   = "█"
	waitGlyph   = "░"
	switchGlyph = "▒"
	idleGlyph   = "·"
	axisTick    = 5
)

// Gantt draws one row per process (executing and waiting ticks), a CPU track
// with context switches and idle ticks, and a time axis labelled every 5 ticks.
func Gantt(w io.Writer, res *sim.Result, opts Options) error {
	theme := opts.theme()
	total := res.TotalTime

	exec := make(map[int][]trace.Segment)
	ctx := blankCells(total)
	for _, seg := range trace.Segments(res.Trace) {
		switch seg.Type {
		case trace.EventExec:
			exec[seg.PID] = append(exec[seg.PID], seg)
		case trace.EventSwitch:
			fill(ctx, seg.Start, seg.End, opts.paint(switchGlyph, theme.Switch))
		case trace.EventIdle:
			fill(ctx, seg.Start, seg.End, opts.paint(idleGlyph, theme.Idle))
		}
	}

	lines := []string{"", opts.paint("GANTT CHART", "bold")}

	for _, pr := range res.ByPID() {
		row := blankCells(total)
		fill(row, pr.Process.ArrivalTime, pr.CompletionTime, opts.paint(waitGlyph, theme.Wait))
		for _, seg := range exec[pr.Process.PID] {
			fill(row, seg.Start, seg.End, opts.paint(execGlyph, theme.Exec))
		}
		lines = append(lines, pidLabel(pr.Process.PID)+" |"+strings.Join(row, ""))
	}
	lines = append(lines, "CTX |"+strings.Join(ctx, ""))

	var axis, labels strings.Builder
	axis.WriteString("    └")
	labels.WriteString("     ")
	for t := int64(0); t < total; t++ {
		if t%axisTick == 0 {
			axis.WriteString("┸")
			labels.WriteString(fmt.Sprintf("%-5d", t))
		} else {
			axis.WriteString("─")
		}
	}
	lines = append(lines, axis.String(), opts.paint(strings.TrimRight(labels.String(), " "), "cyan"))

	lines = append(lines, "", fmt.Sprintf("KEY: %s Executing  %s Waiting  %s Context Switch  %s Idle",
		opts.paint(execGlyph, theme.Exec),
		opts.paint(waitGlyph, theme.Wait),
		opts.paint(switchGlyph, theme.Switch),
		opts.paint(idleGlyph, theme.Idle)))

	return writeLines(w, lines)
}

func blankCells(n int64) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = " "
	}
	return cells
}

// fill sets cells[start:end] to glyph, clipped to the slice.
func fill(cells []string, start, end int64, glyph string) {
	if start < 0 {
		start = 0
	}
	if end > int64(len(cells)) {
		end = int64(len(cells))
	}
	for t := start; t < end; t++ {
		cells[t] = glyph
	}
}
