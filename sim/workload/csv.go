package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vance-sim/vance/sim"
)

// csvHeader is written by WriteProcessesCSV and recognized (and skipped) by ParseProcessesCSV.
var csvHeader = []string{"pid", "burst", "arrival", "priority"}

// ParseProcessesCSV reads process records of the form pid,burst,arrival[,priority].
// A leading header row and lines starting with '#' are skipped.
func ParseProcessesCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var processes []sim.Process
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading process CSV: %w", err)
		}
		if row == 1 && isHeader(record) {
			continue
		}
		p, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("process CSV row %d: %w", row, err)
		}
		processes = append(processes, p)
	}
	if err := sim.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// LoadProcessesCSV reads a process CSV file.
func LoadProcessesCSV(path string) ([]sim.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process CSV: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ParseProcessesCSV(file)
}

// WriteProcessesCSV writes processes with a header row, in the format ParseProcessesCSV reads.
func WriteProcessesCSV(w io.Writer, processes []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing process CSV header: %w", err)
	}
	for _, p := range processes {
		record := []string{
			strconv.Itoa(p.PID),
			strconv.FormatInt(p.BurstTime, 10),
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.Itoa(p.Priority),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing process %d: %w", p.PID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadProcesses reads a process list from a .csv file or a YAML workload spec.
func LoadProcesses(path string) ([]sim.Process, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadProcessesCSV(path)
	case ".yaml", ".yml":
		spec, err := LoadWorkloadSpec(path)
		if err != nil {
			return nil, err
		}
		return GenerateProcesses(spec)
	default:
		return nil, fmt.Errorf("unsupported process file %q: want .csv, .yaml or .yml", path)
	}
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[0]))
	return err != nil
}

func parseRecord(record []string) (sim.Process, error) {
	if len(record) < 3 || len(record) > 4 {
		return sim.Process{}, fmt.Errorf("want 3 or 4 fields (pid,burst,arrival[,priority]), got %d", len(record))
	}
	fields := make([]int64, len(record))
	for i, raw := range record {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return sim.Process{}, fmt.Errorf("field %s: %w", csvHeader[i], err)
		}
		fields[i] = v
	}
	p := sim.Process{PID: int(fields[0]), BurstTime: fields[1], ArrivalTime: fields[2]}
	if len(fields) == 4 {
		p.Priority = int(fields[3])
	}
	return p, nil
}
