// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eqsolve/eqsolver"
	"github.com/katalvlaran/eqsolve/matrix"
	"github.com/katalvlaran/eqsolve/sysfile"
)

// solve flag names.
const (
	flagStrategy = "strategy"
	flagMaxCells = "max-cells"
	flagWorkers  = "workers"
	flagOutput   = "output"
	flagMetrics  = "metrics"
	flagTrace    = "trace"
)

// errFilesFailed is returned when at least one file could not be loaded.
var errFilesFailed = errors.New("some files could not be solved")

func newSolveCmd() *cobra.Command {
	defaults := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more system files",
		Long: `Solve every system file given on the command line.

Each file holds one system (see package sysfile for the format). Files are
solved concurrently, each by its own solver. With --max-cells all solvers share
one storage budget, so large batches may report memory_error.

The exit status is non-zero when a file cannot be read or parsed. Outcomes such
as no_solutions or overflow are results, not failures.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSolve,
	}
	f := cmd.Flags()
	f.String(flagStrategy, defaults.Strategy, "elimination strategy: subtract or signflip")
	f.Int(flagMaxCells, defaults.MaxCells, "shared fraction-cell budget for all solvers (0 = unlimited)")
	f.Int(flagWorkers, defaults.Workers, "number of files solved concurrently")
	f.String(flagOutput, defaults.Output, "output format: text or yaml")
	f.Bool(flagMetrics, defaults.Metrics, "print Prometheus metrics after the results")
	f.Bool(flagTrace, defaults.Trace, "print Solve spans to stderr")

	return cmd
}

// batch holds what every per-file job shares.
type batch struct {
	logger  *slog.Logger
	options []eqsolver.Option
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	strategy, _ := eqsolver.ParseStrategy(cfg.Strategy) // validated
	reg := prometheus.NewRegistry()
	b := batch{
		logger: logger,
		options: []eqsolver.Option{
			eqsolver.WithLogger(logger),
			eqsolver.WithStrategy(strategy),
			eqsolver.WithMetrics(eqsolver.NewMetrics(reg)),
		},
	}
	if cfg.MaxCells > 0 {
		b.options = append(b.options, eqsolver.WithAllocator(matrix.NewBudgetAllocator(cfg.MaxCells)))
	}
	if cfg.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		b.options = append(b.options, eqsolver.WithTracerProvider(tp))
	}

	logger.Info("solving",
		slog.Int("files", len(args)),
		slog.String("strategy", cfg.Strategy),
		slog.Int("workers", cfg.Workers),
		slog.Int("max_cells", cfg.MaxCells),
	)
	start := time.Now()
	results := b.run(cmd.Context(), args, cfg.Workers)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	logger.Info("done",
		slog.Int("files", len(results)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)),
	)

	out := cmd.OutOrStdout()
	if err := writeResults(out, cfg.Output, results); err != nil {
		return err
	}
	if cfg.Metrics {
		if err := writeMetrics(out, reg); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFilesFailed, failed, len(results))
	}

	return nil
}

// run solves every path with at most workers concurrent solvers and returns
// the results in argument order.
func (b batch) run(ctx context.Context, paths []string, workers int) []fileResult {
	results := make([]fileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = b.solveFile(ctx, path)
			return nil
		})
	}
	_ = g.Wait() // jobs report failures in their result

	return results
}

// solveFile loads, solves and releases one system.
func (b batch) solveFile(ctx context.Context, path string) fileResult {
	res := fileResult{File: path, Name: filepath.Base(path)}
	sys, err := sysfile.Load(path)
	if err != nil {
		b.logger.Error("load failed", slog.String("file", path), slog.String("error", err.Error()))
		res.Error = err.Error()
		return res
	}
	if sys.Name != "" {
		res.Name = sys.Name
	}
	res.EqCount = sys.Size()

	s := eqsolver.New(b.options...)
	defer s.Cleanup()

	if err := sys.Apply(s); err != nil {
		// Storage refused by the shared budget is an outcome, not a load failure.
		if errors.Is(err, eqsolver.ErrMemory) {
			res.Outcome = eqsolver.MemoryError.String()
			return res
		}
		res.Error = err.Error()
		return res
	}

	out, _ := s.Solve(ctx) // the outcome carries the failure class
	res.Outcome = out.String()
	if out == eqsolver.Solved {
		for _, x := range s.Solution() {
			res.Solution = append(res.Solution, x.String())
		}
	}

	return res
}
