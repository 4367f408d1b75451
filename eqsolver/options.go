// SPDX-License-Identifier: MIT

// Package eqsolver: functional configuration for Solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Notes:
//   - Options carry collaborators only (logger, allocator, metrics, tracer) and
//     the elimination strategy. None of them changes the exact values a solve
//     produces, except that StrategySignFlip may overflow where
//     StrategySubtract does not.
package eqsolver

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/eqsolve/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy clears pivot columns by direct subtraction.
	DefaultStrategy = StrategySubtract

	// TracerName is the instrumentation scope of every Solver span.
	TracerName = "github.com/katalvlaran/eqsolve/eqsolver"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger         = "eqsolver: WithLogger: logger must be non-nil"
	panicNilAllocator      = "eqsolver: WithAllocator: allocator must be non-nil"
	panicUnknownStrategy   = "eqsolver: WithStrategy: unknown strategy"
	panicNilMetrics        = "eqsolver: WithMetrics: metrics must be non-nil"
	panicNilTracerProvider = "eqsolver: WithTracerProvider: provider must be non-nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; New resolves them via gatherOptions.
type Options struct {
	logger   *slog.Logger     // slog.Default() when unset
	alloc    matrix.Allocator // matrix.HeapAllocator{} when unset
	strategy Strategy         // DefaultStrategy
	metrics  *Metrics         // nil disables metrics
	tracer   trace.Tracer     // global provider when unset
}

// WithLogger routes Solver diagnostics to logger.
// Elimination events log at Debug; overflow and memory failures at Warn.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithAllocator sets the source of grid storage.
//
// Notes:
//   - A Solver holds up to three grids at once during Solve (original, the
//     previous working grid and the fresh scratch grid), so a
//     matrix.BudgetAllocator must allow 3·N·(N+1) cells per solver.
func WithAllocator(alloc matrix.Allocator) Option {
	if alloc == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options) { o.alloc = alloc }
}

// WithStrategy selects the column elimination strategy.
func WithStrategy(s Strategy) Option {
	if !s.valid() {
		panic(panicUnknownStrategy)
	}

	return func(o *Options) { o.strategy = s }
}

// WithMetrics records solve outcomes, durations and pivoting events into m.
// One *Metrics may be shared by many Solvers.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic(panicNilMetrics)
	}

	return func(o *Options) { o.metrics = m }
}

// WithTracerProvider makes Solve emit its span through tp instead of the
// global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicNilTracerProvider)
	}

	return func(o *Options) { o.tracer = tp.Tracer(TracerName) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy: DefaultStrategy,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.alloc == nil {
		o.alloc = matrix.HeapAllocator{}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(TracerName)
	}

	return o
}
