package check

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Runner executes registered checks against a Context.
type Runner struct {
	config   *RunnerConfig
	disabled map[string]bool
}

// RunnerConfig holds configuration for the runner.
type RunnerConfig struct {
	// Disabled contains check IDs to skip.
	Disabled map[string]bool

	// Sequential forces checks to run one at a time. Checks are
	// read-only and independent, so the default is one goroutine per
	// check; the report order is the same either way.
	Sequential bool
}

// NewRunnerConfig creates a default configuration.
func NewRunnerConfig() *RunnerConfig {
	return &RunnerConfig{Disabled: make(map[string]bool)}
}

// NewRunner creates a runner with optional configuration.
func NewRunner(config *RunnerConfig) *Runner {
	if config == nil {
		config = NewRunnerConfig()
	}
	return &Runner{config: config, disabled: config.Disabled}
}

// Disable disables a check by ID.
func (r *Runner) Disable(id string) {
	r.disabled[id] = true
}

// Run executes every registered, non-disabled check and returns the
// concatenated findings in check declaration order. Findings are never
// dropped or reordered.
func (r *Runner) Run(ctx *Context) []Finding {
	checks := make([]CheckDef, 0, Count())
	for _, def := range All() {
		if !r.disabled[def.ID] {
			checks = append(checks, def)
		}
	}

	results := make([][]Finding, len(checks))
	if r.config.Sequential {
		for i, def := range checks {
			results[i] = runOne(def, ctx)
		}
	} else {
		var g errgroup.Group
		for i, def := range checks {
			g.Go(func() error {
				results[i] = runOne(def, ctx)
				return nil
			})
		}
		_ = g.Wait()
	}

	var findings []Finding
	for _, fs := range results {
		findings = append(findings, fs...)
	}
	return findings
}

// runOne executes a single check with a panic guard: an internal error
// becomes a FAIL finding rather than crashing the run.
func runOne(def CheckDef, ctx *Context) (findings []Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			ctx.Logger.Error("check panicked", "check", def.ID, "error", fmt.Sprint(rec))
			findings = []Finding{Failf(def.ID, def.Name, "internal error: %v", rec)}
		}
	}()
	return def.Run(ctx)
}
