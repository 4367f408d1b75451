// SPDX-License-Identifier: MIT

// Package eqsolver - Solver state, lifecycle and coefficient accessors.
//
// Purpose:
//   - Own the original/working grid pair and the solution vector.
//   - Validate 1-based coordinates and report ErrOutOfRange instead of ignoring calls.
//   - Acquire and release storage through the configured matrix.Allocator.

package eqsolver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/eqsolve/fraction"
	"github.com/katalvlaran/eqsolve/matrix"
)

// ---------- error context tags ----------

const (
	ctxSetEqCount       = "SetSystemEqCount"
	ctxSetCoefficient   = "SetCoefficient"
	ctxSetFraction      = "SetCoefficientFraction"
	ctxOriginal         = "OriginalCoefficient"
	ctxOriginalFraction = "OriginalCoefficientFraction"
	ctxAltered          = "AlteredCoefficient"
	ctxSwapRows         = "SwapRows"
	ctxMultiplyRow      = "MultiplyRow"
	ctxDivideRow        = "DivideRow"
	ctxAddRows          = "AddRows"
	ctxSolve            = "Solve"
)

// Solver solves one square linear system at a time with exact fractions.
// The zero value is not usable; construct with New.
type Solver struct {
	opts Options

	n        int               // equation count N
	original *matrix.Augmented // caller-populated, never reduced
	working  *matrix.Augmented // result of the last Solve, or a copy of original
	solution []fraction.Fraction

	overflow bool // set by the last overflowing row operation or Solve
	unusable bool // set when SetSystemEqCount failed to acquire storage
}

// New returns an empty Solver (N = 0) configured by opts.
func New(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// SetSystemEqCount discards any previous system and prepares an empty one
// with n equations and n unknowns. Every cell starts as the canonical zero.
//
// Implementation:
//   - Stage 1: validate 0 <= n <= matrix.MaxSize.
//   - Stage 2: release previous storage and clear the overflow signal.
//   - Stage 3: for n > 0 acquire the original and working grids.
//
// Errors:
//   - ErrEqCount for n outside [0, matrix.MaxSize]; the Solver is unchanged.
//   - ErrMemory (wrapping the allocator error) when storage cannot be acquired;
//     the Solver is left with N = 0 and Solve reports MemoryError until Cleanup
//     or a later successful SetSystemEqCount.
func (s *Solver) SetSystemEqCount(n int) error {
	if n < 0 || n > matrix.MaxSize {
		return solverErrorf(ctxSetEqCount, fmt.Errorf("%w: %d", ErrEqCount, n))
	}
	s.Cleanup()
	if n == 0 {
		return nil
	}

	original, err := s.opts.alloc.Allocate(n)
	if err != nil {
		return s.failAllocation(n, err)
	}
	working, err := s.opts.alloc.Allocate(n)
	if err != nil {
		s.opts.alloc.Release(original)
		return s.failAllocation(n, err)
	}

	s.n = n
	s.original = original
	s.working = working
	s.solution = make([]fraction.Fraction, n)

	return nil
}

func (s *Solver) failAllocation(n int, err error) error {
	s.unusable = true
	s.opts.logger.Warn("eqsolver: storage allocation failed",
		slog.Int("eq_count", n),
		slog.String("error", err.Error()),
	)

	return solverErrorf(ctxSetEqCount, fmt.Errorf("%w: %w", ErrMemory, err))
}

// EqCount returns N, the current number of equations.
func (s *Solver) EqCount() int { return s.n }

// Overflowed reports whether the last Solve or public row operation overflowed.
func (s *Solver) Overflowed() bool { return s.overflow }

// Solution returns a copy of the solution vector, one value per unknown.
// It holds the values of the last Solved outcome; any other outcome leaves it
// as it was (all zeros right after SetSystemEqCount).
func (s *Solver) Solution() []fraction.Fraction {
	out := make([]fraction.Fraction, len(s.solution))
	copy(out, s.solution)

	return out
}

// Cleanup releases all storage, resets N to 0 and clears the overflow signal.
// It is idempotent and safe on a Solver that was never initialised.
func (s *Solver) Cleanup() {
	s.opts.alloc.Release(s.original)
	s.opts.alloc.Release(s.working)
	s.original, s.working, s.solution = nil, nil, nil
	s.n = 0
	s.overflow = false
	s.unusable = false
}

// ---------- bounds ----------

// checkCell validates 1 <= row <= N and 1 <= col <= N+1.
func (s *Solver) checkCell(tag string, row, col int) error {
	if row < 1 || row > s.n || col < 1 || col > s.n+1 {
		return solverErrorf(tag, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, row, col, s.n, s.n+1))
	}

	return nil
}

// checkRow validates 1 <= row <= N.
func (s *Solver) checkRow(tag string, row int) error {
	if row < 1 || row > s.n {
		return solverErrorf(tag, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, s.n))
	}

	return nil
}

// ---------- setters ----------

// SetCoefficient stores the integer v at (row, col) in both grids.
// Zero is stored as the canonical zero, anything else as ±|v|/1.
func (s *Solver) SetCoefficient(row, col int, v int16) error {
	if err := s.checkCell(ctxSetCoefficient, row, col); err != nil {
		return err
	}
	f, _ := fraction.FromInt(int64(v)) // |int16| always fits

	return s.store(row, col, f)
}

// SetCoefficientFraction stores num/den at (row, col) in both grids.
//
// Behavior highlights:
//   - den == 0 forces the cell to the canonical zero, whatever num is.
//   - num == 0 is stored as the canonical zero too.
//   - The sign is (num < 0) XOR (den < 0); magnitudes are stored unreduced.
func (s *Solver) SetCoefficientFraction(row, col int, num, den int16) error {
	if err := s.checkCell(ctxSetFraction, row, col); err != nil {
		return err
	}
	f, _ := fraction.New(int64(num), int64(den)) // |int16| always fits

	return s.store(row, col, f)
}

func (s *Solver) store(row, col int, f fraction.Fraction) error {
	if err := s.original.Set(row-1, col-1, f); err != nil {
		return err
	}

	return s.working.Set(row-1, col-1, f)
}

// ---------- getters ----------

// OriginalCoefficient returns the original cell at (row, col) as an integer.
// Fraction cells are truncated toward zero. Returns 0 with the error when the
// coordinates are out of range.
func (s *Solver) OriginalCoefficient(row, col int) (int, error) {
	if err := s.checkCell(ctxOriginal, row, col); err != nil {
		return 0, err
	}
	f, err := s.original.At(row-1, col-1)
	if err != nil || f.IsZero() {
		return 0, err
	}
	num, den := f.Signed()

	return int(num / den), nil
}

// OriginalCoefficientFraction returns the original cell at (row, col) as a
// numerator/denominator pair with the sign folded into the numerator, exactly
// as stored (not reduced). The canonical zero is (0, 0), which is also what an
// out-of-range call returns alongside its error.
func (s *Solver) OriginalCoefficientFraction(row, col int) (num, den int, err error) {
	if err = s.checkCell(ctxOriginalFraction, row, col); err != nil {
		return 0, 0, err
	}
	f, err := s.original.At(row-1, col-1)
	if err != nil {
		return 0, 0, err
	}
	n, d := f.Signed()

	return int(n), int(d), nil
}

// AlteredCoefficient returns the working cell at (row, col): after Solve this
// is the reduced grid, before it a copy of the original.
func (s *Solver) AlteredCoefficient(row, col int) (fraction.Fraction, error) {
	if err := s.checkCell(ctxAltered, row, col); err != nil {
		return fraction.Zero, err
	}

	return s.working.At(row-1, col-1)
}
