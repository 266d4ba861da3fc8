package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/nbcheck/internal/cli/output"
	"github.com/leapstack-labs/nbcheck/pkg/check"
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules" // register checks
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Root    string   // Project root to inspect
	Format  string   // Output format: text, markdown, json
	Disable []string // Check IDs to disable
	Watch   bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run all conformance checks against a project",
		Long: `Inspect a classification-project repository and report whether the
required artifacts, hygiene files, notebook content, and dataset shapes
are in place.

Each requirement yields PASS, WARN, or FAIL. The command exits non-zero
only when at least one check hard-fails; warnings are guidance for the
next iteration.

Output adapts to environment:
  - Terminal: fixed-width report
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the current directory
  nbcheck check

  # Check a specific project root
  nbcheck check ~/projects/wine-classification

  # Skip the dataset shape check
  nbcheck check --disable TD01

  # Re-run checks whenever project files change
  nbcheck check --watch

  # Output as JSON
  nbcheck check --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Root = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Project root folder (default: current directory)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Check IDs to disable")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run checks on file changes")

	return cmd
}

// CheckOutput is the JSON output for the check command.
type CheckOutput struct {
	Root        string          `json:"root"`
	Findings    []check.Finding `json:"findings"`
	Failures    int             `json:"failures"`
	Warnings    int             `json:"warnings"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	root := cfg.Root
	if opts.Root != "" {
		root = opts.Root
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("cannot resolve project root %s: %w", root, err)
	}

	runnerCfg := check.NewRunnerConfig()
	runnerCfg.Sequential = cfg.SequentialChecks()
	runnerCfg.Disabled = cfg.DisabledChecks()
	for _, id := range opts.Disable {
		runnerCfg.Disabled[id] = true
	}
	runner := check.NewRunner(runnerCfg)

	ctx := check.NewContext(absRoot)
	ctx.Logger = cmdCtx.Logger

	if opts.Watch {
		return watchAndCheck(cmd, runner, ctx, r)
	}

	report := check.Summarize(runner.Run(ctx))
	if err := renderReport(r, absRoot, report); err != nil {
		return err
	}
	if report.Failures > 0 {
		return fmt.Errorf("%d check(s) failed", report.Failures)
	}
	return nil
}

func renderReport(r *output.Renderer, root string, report *check.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(&CheckOutput{
			Root:        root,
			Findings:    report.Findings,
			Failures:    report.Failures,
			Warnings:    report.Warnings,
			GeneratedAt: report.GeneratedAt,
		})
	case output.ModeMarkdown:
		renderReportMarkdown(r, root, report)
		return nil
	default:
		r.Printf("%s", report.Render())
		return nil
	}
}

func renderReportMarkdown(r *output.Renderer, root string, report *check.Report) {
	r.Println("# QA Report")
	r.Println("")
	r.Printf("- **Root**: %s\n", root)
	r.Printf("- **Generated**: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	r.Println("")
	for _, f := range report.Findings {
		r.Printf("- **[%s]** %s", f.Status, f.Label)
		if f.Detail != "" {
			r.Printf(": %s", f.Detail)
		}
		r.Println("")
	}
	r.Println("")
	r.Printf("**Summary**: %d FAIL, %d WARN\n", report.Failures, report.Warnings)
}

// watchAndCheck runs the checks, then re-runs them whenever a file under
// the project's watched directories changes. Watch mode never exits
// non-zero on failures; it runs until interrupted.
func watchAndCheck(cmd *cobra.Command, runner *check.Runner, ctx *check.Context, r *output.Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot start watcher: %w", err)
	}
	defer watcher.Close()

	// The fixed project layout keeps the watch list short: the root plus
	// the notebook and data directories, when they exist.
	for _, dir := range []string{"", "notebooks", "data"} {
		if err := watcher.Add(ctx.Path(dir)); err != nil {
			ctx.Logger.Debug("not watching", "dir", dir, "error", err)
		}
	}

	run := func() {
		report := check.Summarize(runner.Run(ctx))
		if err := renderReport(r, ctx.Root, report); err != nil {
			r.Error(err.Error())
		}
	}
	run()

	// Debounce bursts of events (editors write temp files then rename).
	var pending *time.Timer
	rerun := make(chan struct{}, 1)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-rerun:
			run()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(300*time.Millisecond, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ctx.Logger.Warn("watch error", "error", err)
		}
	}
}
