// Package sim provides the tick-driven CPU scheduling simulation engine for vance.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process input records and ProcessResult outputs
//   - dispatcher.go: the context switch state machine (Idle / Switching)
//   - simulator.go: the tick loop (arrivals, decision, execution, clock advance)
//
// # Architecture
//
// The sim package defines the engine and the policy interface; supporting
// code lives in sub-packages:
//   - sim/trace/: structured event recording and trace summaries
//   - sim/workload/: process lists from CSV, YAML and seeded generation
//   - sim/report/: Gantt chart, summary table and audit rendering
//   - sim/sweep/: parallel runs of independent engines over one workload
//
// # Key Interfaces
//
// SchedulerPolicy is the single extension point. Built-in variants are
// FCFS, SJF, STCF, RoundRobin and Priority; NewPolicy builds one by name.
//
// An Engine never shares its Clock, Dispatcher or Tracer: every Run call
// constructs fresh state, so concurrent sweeps construct one Engine per run.
package sim
