// SPDX-License-Identifier: MIT

package eqsolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/eqsolve/fraction"
)

// Span name and attribute keys of Solve.
const (
	spanSolve = "eqsolver.Solve"

	attrEqCount       = "eqsolve.eq_count"
	attrStrategy      = "eqsolve.strategy"
	attrOutcome       = "eqsolve.outcome"
	attrPivotSwaps    = "eqsolve.pivot_swaps"
	attrRankDeficient = "eqsolve.rank_deficient_columns"
)

// Solve reduces a fresh copy of the original grid and classifies the system.
//
// Implementation:
//   - Stage 1: clear the overflow signal; N == 0 is trivially Solved.
//   - Stage 2: acquire a scratch grid and copy original into it; the scratch
//     grid replaces the working grid.
//   - Stage 3: Gauss-Jordan elimination (see eliminate.go).
//   - Stage 4: verify the candidate against every original equation and copy
//     it into the solution vector.
//
// Returns:
//   - Solved, NoSolutions, InfiniteSolutions with a nil error.
//   - MemoryError with an error wrapping ErrMemory.
//   - Overflow with an error wrapping ErrOverflow; Overflowed() reports true.
//
// The solution vector changes only on Solved. ctx carries the trace span and
// is passed to the logger; the solve itself does not block and is not
// cancellable.
//
// Complexity:
//   - Time O(N³) arithmetic kernels, Space O(N²) for the scratch grid.
func (s *Solver) Solve(ctx context.Context) (Outcome, error) {
	start := time.Now()
	ctx, span := s.opts.tracer.Start(ctx, spanSolve, trace.WithAttributes(
		attribute.Int(attrEqCount, s.n),
		attribute.String(attrStrategy, s.opts.strategy.String()),
	))
	defer span.End()

	outcome, stats, err := s.solve(ctx)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.String(attrOutcome, outcome.String()),
		attribute.Int(attrPivotSwaps, stats.swaps),
		attribute.Int(attrRankDeficient, stats.deficient),
	)
	s.opts.metrics.observeSolve(outcome, elapsed)
	s.opts.metrics.addPivotSwaps(stats.swaps)
	s.opts.metrics.addRankDeficient(stats.deficient)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome.String())
		s.opts.logger.WarnContext(ctx, "eqsolver: solve aborted",
			slog.String("outcome", outcome.String()),
			slog.Int("eq_count", s.n),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return outcome, err
	}

	span.SetStatus(codes.Ok, "")
	s.opts.logger.DebugContext(ctx, "eqsolver: solve finished",
		slog.String("outcome", outcome.String()),
		slog.Int("eq_count", s.n),
		slog.String("strategy", s.opts.strategy.String()),
		slog.Int("pivot_swaps", stats.swaps),
		slog.Int("rank_deficient_columns", stats.deficient),
		slog.Duration("elapsed", elapsed),
	)

	return outcome, nil
}

func (s *Solver) solve(ctx context.Context) (Outcome, elimStats, error) {
	s.overflow = false
	if s.unusable {
		return MemoryError, elimStats{}, solverErrorf(ctxSolve, ErrMemory)
	}
	if s.n == 0 {
		return Solved, elimStats{}, nil
	}

	scratch, err := s.opts.alloc.Allocate(s.n)
	if err != nil {
		return MemoryError, elimStats{}, solverErrorf(ctxSolve, fmt.Errorf("%w: %w", ErrMemory, err))
	}
	_ = scratch.CopyFrom(s.original) // same size by construction
	s.opts.alloc.Release(s.working)
	s.working = scratch

	e := elimination{
		ctx:      ctx,
		logger:   s.opts.logger,
		m:        scratch,
		n:        s.n,
		strategy: s.opts.strategy,
	}
	outcome, err := e.run()
	if err != nil {
		s.overflow = true
		return Overflow, e.stats, solverErrorf(ctxSolve, err)
	}
	if outcome != Solved {
		return outcome, e.stats, nil
	}

	ok, err := verify(s.original, scratch)
	if err != nil {
		s.overflow = true
		return Overflow, e.stats, solverErrorf(ctxSolve, err)
	}
	if !ok {
		s.opts.logger.DebugContext(ctx, "eqsolver: verification rejected candidate",
			slog.Int("eq_count", s.n),
		)
		return NoSolutions, e.stats, nil
	}

	for i := range s.solution {
		v, _ := scratch.At(i, s.n)
		s.solution[i] = fraction.Reduce(v)
	}

	return Solved, e.stats, nil
}
