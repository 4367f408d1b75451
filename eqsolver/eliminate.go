// SPDX-License-Identifier: MIT

// Package eqsolver - Gauss-Jordan elimination on a scratch grid.
//
// State machine per pivot position (row, col), starting at (0, 0):
//   - Pivoting:    find a nonzero cell at or below row in col and swap it up;
//     none found ⇒ the column is rank-deficient, advance col only.
//   - Normalizing: divide the pivot row by the pivot unless it is exactly +1.
//   - Eliminating: clear col from every other row, rows above first
//     (row-1 down to 0), then rows below (row+1 .. N-1).
//   - Advancing:   move to (row+1, col+1).
//
// When every column has been visited, fewer than N pivots means the system is
// singular and classify decides between NoSolutions and InfiniteSolutions.
// Otherwise the grid holds a candidate solution in column N, which Solve
// verifies against the original equations.

package eqsolver

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/eqsolve/fraction"
	"github.com/katalvlaran/eqsolve/matrix"
)

// elimStats counts pivoting events of one elimination run.
type elimStats struct {
	swaps     int // row exchanges during pivot search
	deficient int // columns without a pivot
}

// elimination reduces m in place. All row and column indices it produces are
// within bounds, so the matrix row operations can only fail with
// fraction.ErrOverflow.
type elimination struct {
	ctx      context.Context
	logger   *slog.Logger
	m        *matrix.Augmented
	n        int
	strategy Strategy
	stats    elimStats
}

// cell reads m[r][c]; callers guarantee the indices.
func (e *elimination) cell(r, c int) fraction.Fraction {
	v, _ := e.m.At(r, c)

	return v
}

// run executes the state machine and returns Solved for a full-rank reduction
// (still to be verified), NoSolutions or InfiniteSolutions for a singular one.
// A non-nil error always wraps fraction.ErrOverflow.
func (e *elimination) run() (Outcome, error) {
	row := 0
	for col := 0; col < e.n; col++ {
		if !e.pivot(row, col) {
			e.stats.deficient++
			e.logger.DebugContext(e.ctx, "eqsolver: rank-deficient column",
				slog.Int("row", row),
				slog.Int("col", col),
			)
			continue
		}
		if err := e.normalize(row, col); err != nil {
			return Overflow, err
		}
		if err := e.eliminate(row, col); err != nil {
			return Overflow, err
		}
		row++
	}
	if row < e.n {
		return e.classify(row), nil
	}

	return Solved, nil
}

// pivot makes m[row][col] nonzero by swapping in the first lower row that has
// a nonzero entry in col. It reports false when no such row exists.
func (e *elimination) pivot(row, col int) bool {
	if !e.cell(row, col).IsZero() {
		return true
	}
	for r := row + 1; r < e.n; r++ {
		if e.cell(r, col).IsZero() {
			continue
		}
		_ = e.m.SwapRows(row, r)
		e.stats.swaps++
		e.logger.DebugContext(e.ctx, "eqsolver: pivot swap",
			slog.Int("row", row),
			slog.Int("with", r),
			slog.Int("col", col),
		)
		return true
	}

	return false
}

// normalize scales the pivot row so that m[row][col] is exactly +1.
func (e *elimination) normalize(row, col int) error {
	p := e.cell(row, col)
	if p.IsOne() {
		return nil
	}

	return e.m.DivideRow(row, p)
}

// eliminate clears col from every row other than the pivot row.
func (e *elimination) eliminate(row, col int) error {
	targets := make([]int, 0, e.n-1)
	for r := row - 1; r >= 0; r-- {
		targets = append(targets, r)
	}
	for r := row + 1; r < e.n; r++ {
		targets = append(targets, r)
	}

	if e.strategy == StrategySignFlip {
		return e.eliminateSignFlip(row, col, targets)
	}

	return e.eliminateSubtract(row, col, targets)
}

func (e *elimination) eliminateSubtract(row, col int, targets []int) error {
	for _, t := range targets {
		m := e.cell(t, col)
		if m.IsZero() {
			continue
		}
		if err := e.m.SubtractScaledRow(t, row, m); err != nil {
			return err
		}
	}

	return nil
}

// eliminateSignFlip holds the pivot row at -1 so that adding m × pivotRow
// cancels m in the target, then restores the row.
func (e *elimination) eliminateSignFlip(row, col int, targets []int) error {
	_ = e.m.NegateRow(row)
	for _, t := range targets {
		m := e.cell(t, col)
		if m.IsZero() {
			continue
		}
		if err := e.m.MultiplyRow(row, m); err != nil {
			return err
		}
		if err := e.m.AddRows(t, row); err != nil {
			return err
		}
		if err := e.m.DivideRow(row, m); err != nil {
			return err
		}
	}

	return e.m.NegateRow(row)
}

// classify decides a singular system once rows [rank, N) have been reduced to
// all-zero coefficients. Any such row with a nonzero right-hand side is the
// equation 0 = c and makes the system inconsistent.
func (e *elimination) classify(rank int) Outcome {
	for r := rank; r < e.n; r++ {
		if !e.cell(r, e.n).IsZero() {
			return NoSolutions
		}
	}

	return InfiniteSolutions
}
