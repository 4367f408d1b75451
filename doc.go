// SPDX-License-Identifier: MIT

// Package eqsolve solves square systems of linear equations exactly.
//
// Instead of floating point, every value is a fraction with 32-bit numerator
// and denominator magnitudes, and every arithmetic step checks for overflow in
// 64-bit intermediates. "No solutions" and "infinitely many solutions" are
// therefore decided with algebraic certainty, and a result that cannot be
// represented is reported as Overflow instead of being silently wrapped.
//
// Packages:
//
//	fraction/    : exact fraction value type: Reduce, Mul, Div, Add, Sub, overflow checks
//	matrix/      : N×(N+1) augmented grid, O(1) row swaps, row operations, allocators
//	eqsolver/    : Solver: setters/getters, Gauss-Jordan elimination, verification,
//	               slog logging, Prometheus metrics, OpenTelemetry spans
//	sysfile/     : YAML system files
//	cmd/eqsolve/ : command-line front end (cobra)
//	examples/    : runnable scenarios
//
// Quick example (x + y = 3, x − y = 1):
//
//	s := eqsolver.New()
//	_ = s.SetSystemEqCount(2)
//	for col, v := range []int16{1, 1, 3} {
//		_ = s.SetCoefficient(1, col+1, v)
//	}
//	for col, v := range []int16{1, -1, 1} {
//		_ = s.SetCoefficient(2, col+1, v)
//	}
//	out, _ := s.Solve(ctx)   // eqsolver.Solved
//	x := s.Solution()        // [2 1]
//
// Limits: N ≤ 65535; coefficients entered through the setters are int16 values
// or int16/int16 fractions.
package eqsolve
