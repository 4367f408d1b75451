// SPDX-License-Identifier: MIT

// Package eqsolver solves square systems of linear equations exactly.
//
// A Solver owns two N×(N+1) augmented grids of fraction.Fraction values:
//   - original: written by the setters, never touched by elimination;
//   - working:  rebuilt from original on every Solve and reduced in place.
//
// Solve runs Gauss-Jordan elimination with positional pivoting (first nonzero
// entry at or below the current row), classifies rank-deficient systems, and
// re-checks every original equation against the candidate solution before
// reporting Solved. Arithmetic overflow is carried as an error value
// (fraction.ErrOverflow) and aborts the solve at once.
//
// Coordinates on the public surface are 1-based: row ∈ [1, N], col ∈ [1, N+1],
// with column N+1 holding the right-hand side.
//
// Quick start:
//
//	s := eqsolver.New()
//	_ = s.SetSystemEqCount(2)
//	_ = s.SetCoefficient(1, 1, 1) // x + y = 3
//	_ = s.SetCoefficient(1, 2, 1)
//	_ = s.SetCoefficient(1, 3, 3)
//	_ = s.SetCoefficient(2, 1, 1) // x - y = 1
//	_ = s.SetCoefficient(2, 2, -1)
//	_ = s.SetCoefficient(2, 3, 1)
//	out, _ := s.Solve(context.Background())
//	// out == eqsolver.Solved, s.Solution() == [2 1]
//
// Concurrency: a Solver is not safe for concurrent use. Distinct Solvers are
// independent; they may share a matrix.BudgetAllocator.
package eqsolver
