// Package cycle drives periodic work that must survive individual failures.
package cycle

import (
	"context"
	"time"

	"github.com/audwofla/Aramalyze/internal/logger"
)

// Step is one unit of work in a cycle.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes its steps in order, once per interval. A failing step is
// logged and ends the current cycle; the next cycle starts on schedule.
// Cycles never overlap.
type Runner struct {
	steps    []Step
	interval time.Duration
	log      *logger.Logger
}

func NewRunner(interval time.Duration, log *logger.Logger, steps ...Step) *Runner {
	return &Runner{
		steps:    steps,
		interval: interval,
		log:      log.With("component", "cycle"),
	}
}

// Run blocks until ctx is done. The first cycle starts immediately.
func (r *Runner) Run(ctx context.Context) error {
	for {
		r.RunOnce(ctx)

		r.log.Info("Sleeping before next cycle", "interval", r.interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
}

// RunOnce executes one cycle and reports whether every step succeeded.
func (r *Runner) RunOnce(ctx context.Context) bool {
	r.log.Info("Cycle start")
	for _, step := range r.steps {
		if ctx.Err() != nil {
			return false
		}
		start := time.Now()
		if err := step.Run(ctx); err != nil {
			r.log.Error("Cycle step failed", "step", step.Name, "error", err)
			return false
		}
		r.log.Info("Cycle step done", "step", step.Name, "duration", time.Since(start))
	}
	r.log.Info("Cycle complete")
	return true
}
