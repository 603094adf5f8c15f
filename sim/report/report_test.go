package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vance-sim/vance/sim"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func runFCFS(t *testing.T, latency int64) *sim.Result {
	t.Helper()
	res, err := sim.NewEngine(&sim.FCFS{}, sim.EngineConfig{DispatchLatency: latency}).Run([]sim.Process{
		{PID: 1, BurstTime: 5, ArrivalTime: 0},
		{PID: 2, BurstTime: 3, ArrivalTime: 1},
	})
	require.NoError(t, err)
	return res
}

func TestGantt_PlainRowsAndAxis(t *testing.T) {
	// GIVEN FCFS [(1,5,0),(2,3,1)] with no switch cost
	res := runFCFS(t, 0)

	// WHEN rendered without color
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, res, Options{}))
	out := buf.String()

	// THEN each process row shows executing and waiting ticks
	assert.Contains(t, out, "P01 |█████   \n")
	assert.Contains(t, out, "P02 | ░░░░███\n")
	assert.Contains(t, out, "CTX |        \n")
	assert.Contains(t, out, "    └┸────┸──\n")
	assert.Contains(t, out, "     0    5\n")
	assert.NotContains(t, out, "\033[", "plain output must not carry escape codes")
}

func TestGantt_SwitchTrack(t *testing.T) {
	res := runFCFS(t, 1)
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, res, Options{}))

	var ctx string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "CTX |") {
			ctx = line
		}
	}
	// Switches happen at ticks 0 and 6 of a 10-tick run
	assert.Equal(t, "CTX |"+switchGlyph+"     "+switchGlyph+"   ", ctx)
}

func TestGantt_IdleTicksOnCPUTrack(t *testing.T) {
	// GIVEN a gap between the first completion and the next arrival
	res, err := sim.NewEngine(&sim.FCFS{}, sim.EngineConfig{}).Run([]sim.Process{
		{PID: 1, BurstTime: 2, ArrivalTime: 0},
		{PID: 2, BurstTime: 1, ArrivalTime: 4},
	})
	require.NoError(t, err)

	// WHEN rendered
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, res, Options{}))
	out := buf.String()

	// THEN the idle ticks 2 and 3 are marked on the CPU track
	assert.Contains(t, out, "P01 |██   \n")
	assert.Contains(t, out, "P02 |    █\n")
	assert.Contains(t, out, "CTX |  "+idleGlyph+idleGlyph+" \n")

	// AND the idle color applies to those ticks
	buf.Reset()
	require.NoError(t, Gantt(&buf, res, Options{Color: true, Theme: Theme{Idle: "magenta"}}))
	assert.Contains(t, buf.String(), ansiCodes["magenta"]+idleGlyph+ansiReset)
}

func TestGantt_ColorIsOptIn(t *testing.T) {
	res := runFCFS(t, 0)
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, res, Options{Color: true}))
	assert.Contains(t, buf.String(), ansiCodes["green"]+execGlyph+ansiReset)

	// A custom theme overrides only the elements it sets
	buf.Reset()
	require.NoError(t, Gantt(&buf, res, Options{Color: true, Theme: Theme{Exec: "blue"}}))
	assert.Contains(t, buf.String(), ansiCodes["blue"]+execGlyph+ansiReset)
	assert.Contains(t, buf.String(), ansiCodes["yellow"]+waitGlyph+ansiReset)
}

func TestThemeFromMap(t *testing.T) {
	theme, err := ThemeFromMap(map[string]string{"exec": "cyan", "ctx": "magenta"})
	require.NoError(t, err)
	assert.Equal(t, Theme{Exec: "cyan", Switch: "magenta"}, theme)

	_, err = ThemeFromMap(map[string]string{"exec": "purple"})
	assert.Error(t, err)
	_, err = ThemeFromMap(map[string]string{"border": "red"})
	assert.Error(t, err)
}

func TestSummary_TableAndFigures(t *testing.T) {
	res := runFCFS(t, 1)
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, res, Options{}))
	out := buf.String()

	assert.Contains(t, out, "PERFORMANCE SUMMARY")
	assert.Contains(t, out, "P01")
	assert.Contains(t, out, "P02")
	assert.Contains(t, out, "Average Waiting Time:    3.50")
	assert.Contains(t, out, "Average Turnaround Time: 7.50")
	assert.Contains(t, out, "Hardware Efficiency:     80.0%")
	assert.Contains(t, out, "CPU Utilization:         80.0%")
	assert.Contains(t, out, "Context Switches:        2 (2 switch ticks, 0 idle ticks)")
}

func TestSummary_LargeCountsUseThousandsSeparators(t *testing.T) {
	res := &sim.Result{TotalTime: 1234567, TotalBurst: 1200000, ContextSwitches: 4321}
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, res, Options{}))
	assert.Contains(t, buf.String(), "1,234,567")
	assert.Contains(t, buf.String(), "4,321")
}

func TestAudit_ShowsDerivation(t *testing.T) {
	res := runFCFS(t, 0)
	var buf bytes.Buffer
	require.NoError(t, Audit(&buf, res, Options{}))
	out := buf.String()
	assert.Contains(t, out, "P02:")
	assert.Contains(t, out, "Turnaround: 8 (End) - 1 (Start) = 7")
	assert.Contains(t, out, "Wait:       7 (TAT) - 3 (Burst) = 4")
}

func TestWriteJSON_Shape(t *testing.T) {
	res := runFCFS(t, 0)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"individual_results", "averages", "structured_trace", "log", "total_time", "context_switches"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, float64(8), decoded["total_time"])
	assert.Contains(t, buf.String(), `"event_type": "EXEC"`)
}

func TestSaveJSON_WritesFile(t *testing.T) {
	res := runFCFS(t, 0)
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, SaveJSON(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded sim.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.Processes, decoded.Processes)
	assert.Equal(t, res.Trace, decoded.Trace)
}

func TestSaveJSON_BadPath(t *testing.T) {
	err := SaveJSON(runFCFS(t, 0), filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
	assert.Error(t, err)
}

func TestComparison_MarksBestAndReportsErrors(t *testing.T) {
	fcfs := runFCFS(t, 0)
	stcf, err := sim.NewEngine(&sim.STCF{}, sim.EngineConfig{}).Run([]sim.Process{
		{PID: 1, BurstTime: 5, ArrivalTime: 0},
		{PID: 2, BurstTime: 3, ArrivalTime: 1},
	})
	require.NoError(t, err)
	require.Less(t, stcf.Averages.AvgWaitingTime, fcfs.Averages.AvgWaitingTime)

	var buf bytes.Buffer
	require.NoError(t, Comparison(&buf, []ComparisonRow{
		{Label: "fcfs", Result: fcfs},
		{Label: "stcf", Result: stcf},
		{Label: "broken", Err: errors.New("tick limit exceeded")},
	}, Options{}))
	out := buf.String()

	assert.Contains(t, out, "AVG RESPONSE")
	assert.Contains(t, out, "stcf *")
	assert.NotContains(t, out, "fcfs *")
	assert.Contains(t, out, "error: tick limit exceeded")
}
