// SPDX-License-Identifier: MIT

// Command linexp runs the linear-algebra law experiments and prints their
// reports.
//
//	linexp list
//	linexp run [experiment...] [--config file.yaml] [--trials N] [--seed S]
//	           [--size N] [--kind int|float] [--output text|yaml] [--verbose]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/linear/experiment"
	"github.com/spf13/cobra"
)

// options holds the persistent flags.
type options struct {
	configPath string
	trials     int
	seed       int64
	size       int
	kind       string
	output     string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. The
// interrupt handler is released before run returns.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "linexp",
		Short: "Run randomized linear-algebra law experiments",
		Long: `linexp draws random vectors and matrices and checks algebraic laws
(distributivity, trace linearity, symmetric closure, dot product sign and
commutativity, identity, circle transforms), reporting how many trials held.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.IntVar(&opts.trials, "trials", experiment.DefaultTrials, "trials per experiment")
	pf.Int64Var(&opts.seed, "seed", 0, "base random seed (0 picks one from the clock)")
	pf.IntVar(&opts.size, "size", experiment.DefaultSize, "matrix side and vector dimension")
	pf.StringVar(&opts.kind, "kind", experiment.DefaultKind, "element kind: int or float")
	pf.StringVar(&opts.output, "output", "text", "report format: text or yaml")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCmd(opts), newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range experiment.Names() {
				e, _ := experiment.Lookup(name)
				fmt.Fprintf(out, "%-20s %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [experiment...]",
		Short: "Run experiments (all when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			if opts.output != "text" && opts.output != "yaml" {
				return fmt.Errorf("unknown output format %q", opts.output)
			}

			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.Debug("config resolved",
				"trials", cfg.Trials, "size", cfg.Size, "kind", cfg.Kind,
				"seed", cfg.Seed, "experiments", cfg.Experiments)

			start := time.Now()
			reports, err := experiment.RunAll(cmd.Context(), cfg)
			if err != nil {
				logger.Error("run failed", "error", err)
				return fmt.Errorf("failed to run experiments: %w", err)
			}
			for _, r := range reports {
				logger.Info("experiment finished",
					"name", r.Name, "run_id", r.RunID,
					"passed", r.Passed, "trials", r.Trials)
			}
			logger.Debug("all experiments finished", "elapsed", time.Since(start))

			return writeReports(cmd.OutOrStdout(), opts.output, reports)
		},
	}
}

// newLogger writes text logs to w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers defaults, the config file, explicitly set flags and
// positional experiment names, in that order, then validates.
func resolveConfig(cmd *cobra.Command, opts *options, args []string) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := experiment.LoadConfig(opts.configPath)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = opts.trials
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("size") {
		cfg.Size = opts.size
	}
	if flags.Changed("kind") {
		cfg.Kind = opts.kind
	}
	if len(args) > 0 {
		cfg.Experiments = args
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return experiment.Config{}, err
	}
	return cfg, nil
}

func writeReports(w io.Writer, format string, reports []experiment.Report) error {
	switch format {
	case "yaml":
		return experiment.EncodeYAML(w, reports)
	case "text":
		for _, r := range reports {
			fmt.Fprintln(w, r)
			if r.MaxDeviation > 0 {
				fmt.Fprintf(w, "  max deviation: %g\n", r.MaxDeviation)
			}
			for _, d := range r.Details {
				fmt.Fprintf(w, "  %s\n", d)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
