// Package sweep runs several scheduler configurations over one workload in parallel.
//
// Every run builds its own sim.Engine inside its worker goroutine, so runs share
// nothing but the read-only process slice.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vance-sim/vance/sim"
)

// Config is one point of the sweep.
type Config struct {
	Label  string
	Policy sim.PolicyConfig
	Engine sim.EngineConfig
}

// Outcome is the result of one configuration. Exactly one of Result and Err is set.
type Outcome struct {
	RunID   string
	Config  Config
	Result  *sim.Result
	Err     error
	Elapsed time.Duration
}

// Options configures a sweep.
type Options struct {
	// MaxWorkers limits concurrent runs.
	// Default: runtime.NumCPU()
	MaxWorkers int
}

// DefaultOptions returns the default sweep options.
func DefaultOptions() Options {
	return Options{MaxWorkers: runtime.NumCPU()}
}

// PolicyConfigs returns one Config per canonical policy, sharing engine settings.
// quantum applies to round-robin; preemptive applies to priority.
func PolicyConfigs(quantum int64, preemptive bool, engine sim.EngineConfig) []Config {
	configs := make([]Config, 0, len(sim.PolicyNames))
	for _, name := range sim.PolicyNames {
		cfg := Config{Label: name, Policy: sim.PolicyConfig{Name: name}, Engine: engine}
		switch name {
		case "rr":
			cfg.Policy.Quantum = quantum
			cfg.Label = fmt.Sprintf("rr(q=%d)", quantum)
		case "priority":
			cfg.Policy.Preemptive = preemptive
			if preemptive {
				cfg.Label = "priority(preemptive)"
			}
		}
		configs = append(configs, cfg)
	}
	return configs
}

type job struct {
	index int
	cfg   Config
}

// Run executes every configuration against processes and returns outcomes in
// configuration order. Once ctx is cancelled no further runs start; the
// outcomes of unstarted runs carry ctx.Err().
func Run(ctx context.Context, processes []sim.Process, configs []Config, opts Options) []Outcome {
	outcomes := make([]Outcome, len(configs))
	if len(configs) == 0 {
		return outcomes
	}

	numWorkers := opts.MaxWorkers
	if numWorkers > len(configs) {
		numWorkers = len(configs)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan job, len(configs))
	for i, cfg := range configs {
		jobs <- job{index: i, cfg: cfg}
	}
	close(jobs)

	logrus.Infof("Starting sweep of %d configurations with %d workers", len(configs), numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(ctx, processes, jobs, outcomes, &wg)
	}
	wg.Wait()

	return outcomes
}

// worker drains jobs. Each job index is written by exactly one worker.
func worker(ctx context.Context, processes []sim.Process, jobs <-chan job, outcomes []Outcome, wg *sync.WaitGroup) {
	defer wg.Done()
	for j := range jobs {
		outcome := Outcome{RunID: "run_" + uuid.New().String()[:8], Config: j.cfg}
		if err := ctx.Err(); err != nil {
			outcome.Err = err
			outcomes[j.index] = outcome
			continue
		}
		runOne(processes, &outcome)
		outcomes[j.index] = outcome
	}
}

func runOne(processes []sim.Process, outcome *Outcome) {
	log := logrus.WithField("run", outcome.RunID)
	cfg := outcome.Config

	if err := cfg.Policy.Validate(); err != nil {
		outcome.Err = fmt.Errorf("config %q: %w", cfg.Label, err)
		log.Warnf("skipping %s: %v", cfg.Label, err)
		return
	}

	start := time.Now()
	engine := sim.NewEngine(sim.NewPolicy(cfg.Policy), cfg.Engine)
	res, err := engine.Run(processes)
	outcome.Elapsed = time.Since(start)
	if err != nil {
		outcome.Err = fmt.Errorf("config %q: %w", cfg.Label, err)
		log.Warnf("%s failed: %v", cfg.Label, err)
		return
	}
	outcome.Result = res
	log.Infof("%s finished: avg wait %.2f, avg turnaround %.2f, %d ticks",
		cfg.Label, res.Averages.AvgWaitingTime, res.Averages.AvgTurnaroundTime, res.TotalTime)
}

// Best returns the successful outcome with the lowest average waiting time,
// ties going to the earlier configuration. ok is false if every run failed.
func Best(outcomes []Outcome) (best Outcome, ok bool) {
	for _, o := range outcomes {
		if o.Err != nil || o.Result == nil {
			continue
		}
		if !ok || o.Result.Averages.AvgWaitingTime < best.Result.Averages.AvgWaitingTime {
			best, ok = o, true
		}
	}
	return best, ok
}
