// SPDX-License-Identifier: MIT

package eqsolver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsolve/eqsolver"
	"github.com/katalvlaran/eqsolve/fraction"
	"github.com/katalvlaran/eqsolve/matrix"
)

var strategies = []eqsolver.Strategy{eqsolver.StrategySubtract, eqsolver.StrategySignFlip}

// forEachStrategy runs fn once per elimination strategy.
func forEachStrategy(t *testing.T, fn func(t *testing.T, s *eqsolver.Solver)) {
	t.Helper()
	for _, st := range strategies {
		t.Run(st.String(), func(t *testing.T) {
			fn(t, eqsolver.New(eqsolver.WithStrategy(st)))
		})
	}
}

func TestSolveUniqueSolution(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})

		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		requireSolution(t, s, fraction.MustNew(2, 1), fraction.One)
		require.False(t, s.Overflowed())

		// The working grid is the reduced identity with the solution in column 3.
		want := [][]fraction.Fraction{
			{fraction.One, fraction.Zero, fraction.MustNew(2, 1)},
			{fraction.Zero, fraction.One, fraction.One},
		}
		for i, row := range want {
			for j, w := range row {
				got, err := s.AlteredCoefficient(i+1, j+1)
				require.NoError(t, err)
				require.True(t, w.Equal(got), "(%d,%d): want %v, got %v", i+1, j+1, w, got)
			}
		}
	})
}

func TestSolveIdenticalEquations(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s, []int16{1, 1, 3}, []int16{1, 1, 3})

		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.InfiniteSolutions, out)
	})
}

func TestSolveInconsistentEquations(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s, []int16{1, 1, 3}, []int16{2, 2, 10})

		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.NoSolutions, out)
	})
}

func TestSolveSingleZeroEquation(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s, []int16{0, 0})
		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.InfiniteSolutions, out)

		load(t, s, []int16{0, 5})
		out, err = solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.NoSolutions, out)
	})
}

func TestSolveNeedsPivotSwap(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s,
			[]int16{0, 1, 1, 3},
			[]int16{1, 0, 1, 4},
			[]int16{1, 1, 0, 5},
		)

		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		requireSolution(t, s, fraction.MustNew(3, 1), fraction.MustNew(2, 1), fraction.One)

		// Row swaps happen on the working grid only.
		v, err := s.OriginalCoefficient(1, 1)
		require.NoError(t, err)
		require.Zero(t, v)
	})
}

func TestSolveFractionCoefficients(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		// x/2 + y/3 = 2, x/4 - y = -5/2  ⇒  x = 2, y = 3
		require.NoError(t, s.SetSystemEqCount(2))
		require.NoError(t, s.SetCoefficientFraction(1, 1, 1, 2))
		require.NoError(t, s.SetCoefficientFraction(1, 2, 1, 3))
		require.NoError(t, s.SetCoefficient(1, 3, 2))
		require.NoError(t, s.SetCoefficientFraction(2, 1, 1, 4))
		require.NoError(t, s.SetCoefficient(2, 2, -1))
		require.NoError(t, s.SetCoefficientFraction(2, 3, -5, 2))

		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		requireSolution(t, s, fraction.MustNew(2, 1), fraction.MustNew(3, 1))
	})
}

func TestSolveFractionalSolutionIsReduced(t *testing.T) {
	s := eqsolver.New()
	require.NoError(t, s.SetSystemEqCount(1))
	require.NoError(t, s.SetCoefficient(1, 1, 4))
	require.NoError(t, s.SetCoefficientFraction(1, 2, 6, 3)) // 4x = 6/3

	out, err := solve(t, s)
	require.NoError(t, err)
	require.Equal(t, eqsolver.Solved, out)
	require.Equal(t, []fraction.Fraction{fraction.MustNew(1, 2)}, s.Solution())
}

// TestSolveRankDeficientMiddleColumn has a pivotless column before the last one.
func TestSolveRankDeficientMiddleColumn(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s,
			[]int16{1, 1, 1, 3},
			[]int16{2, 2, 2, 6},
			[]int16{0, 0, 1, 1},
		)
		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.InfiniteSolutions, out)

		load(t, s,
			[]int16{1, 1, 1, 3},
			[]int16{2, 2, 2, 7},
			[]int16{0, 0, 1, 1},
		)
		out, err = solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.NoSolutions, out)
	})
}

// TestSolveInconsistentBesideZeroRow keeps an all-zero row next to a 0 = c row.
func TestSolveInconsistentBesideZeroRow(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s,
			[]int16{1, 1, 1, 1},
			[]int16{1, 1, 1, 2},
			[]int16{1, 1, 1, 1},
		)
		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.NoSolutions, out)
	})
}

// setOverflowSystem writes a 2×2 system whose elimination needs a denominator
// of about 3.5e13.
func setOverflowSystem(t *testing.T, s *eqsolver.Solver) {
	t.Helper()
	require.NoError(t, s.SetCoefficientFraction(1, 1, 1, 32767))
	require.NoError(t, s.SetCoefficientFraction(1, 2, 1, 32766))
	require.NoError(t, s.SetCoefficient(1, 3, 1))
	require.NoError(t, s.SetCoefficientFraction(2, 1, 1, 32765))
	require.NoError(t, s.SetCoefficientFraction(2, 2, 1, 32764))
	require.NoError(t, s.SetCoefficient(2, 3, 1))
}

func TestSolveOverflowKeepsPreviousSolution(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s *eqsolver.Solver) {
		load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})
		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		before := s.Solution()

		setOverflowSystem(t, s)
		out, err = solve(t, s)
		require.ErrorIs(t, err, eqsolver.ErrOverflow)
		require.ErrorIs(t, err, fraction.ErrOverflow)
		require.Equal(t, eqsolver.Overflow, out)
		require.True(t, s.Overflowed())
		require.Equal(t, before, s.Solution())

		// The next solve starts with a cleared signal.
		load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})
		out, err = solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		require.False(t, s.Overflowed())
	})
}

func TestSolveMemoryErrorForScratchGrid(t *testing.T) {
	budget := matrix.NewBudgetAllocator(2 * 2 * 3) // original + working only
	s := eqsolver.New(eqsolver.WithAllocator(budget))
	load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})

	out, err := solve(t, s)
	require.ErrorIs(t, err, eqsolver.ErrMemory)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.Equal(t, eqsolver.MemoryError, out)
	require.Equal(t, []fraction.Fraction{fraction.Zero, fraction.Zero}, s.Solution())

	// The working grid survives a failed solve.
	f, err := s.AlteredCoefficient(2, 2)
	require.NoError(t, err)
	require.Equal(t, fraction.NegOne, f)
}

// TestSolveIsRepeatable checks that each solve starts from the original grid.
func TestSolveIsRepeatable(t *testing.T) {
	s := eqsolver.New()
	load(t, s, []int16{0, 2, 4}, []int16{3, 0, 9})

	for i := 0; i < 3; i++ {
		out, err := solve(t, s)
		require.NoError(t, err)
		require.Equal(t, eqsolver.Solved, out)
		requireSolution(t, s, fraction.MustNew(3, 1), fraction.MustNew(2, 1))
	}
}

func TestStrategiesAgree(t *testing.T) {
	systems := [][][]int16{
		{{1, 1, 3}, {1, -1, 1}},
		{{2, 3, -1, 1}, {4, 1, 2, 2}, {-2, 5, 3, 3}},
		{{0, 0, 1, 2}, {0, 1, 0, 3}, {1, 0, 0, 4}},
		{{1, 2, 3, 4, 10}, {2, 3, 4, 1, 10}, {3, 4, 1, 2, 10}, {4, 1, 2, 3, 10}},
		{{1, 2, 3}, {2, 4, 6}},
		{{1, 2, 3}, {2, 4, 7}},
	}
	for i, sys := range systems {
		t.Run(fmt.Sprintf("system%d", i), func(t *testing.T) {
			sub := eqsolver.New(eqsolver.WithStrategy(eqsolver.StrategySubtract))
			flip := eqsolver.New(eqsolver.WithStrategy(eqsolver.StrategySignFlip))
			load(t, sub, sys...)
			load(t, flip, sys...)

			outSub, errSub := sub.Solve(context.Background())
			outFlip, errFlip := flip.Solve(context.Background())
			require.NoError(t, errSub)
			require.NoError(t, errFlip)
			require.Equal(t, outSub, outFlip)
			requireSolution(t, flip, sub.Solution()...)
		})
	}
}

func TestVerify(t *testing.T) {
	original := mustGrid(t, []fraction.Fraction{fraction.One, fraction.One, fraction.MustNew(3, 1)},
		[]fraction.Fraction{fraction.One, fraction.NegOne, fraction.One})

	good := mustGrid(t, []fraction.Fraction{fraction.One, fraction.Zero, fraction.MustNew(2, 1)},
		[]fraction.Fraction{fraction.Zero, fraction.One, fraction.One})
	ok, err := eqsolver.VerifyTestOnly(original, good)
	require.NoError(t, err)
	require.True(t, ok)

	bad := mustGrid(t, []fraction.Fraction{fraction.One, fraction.Zero, fraction.MustNew(3, 1)},
		[]fraction.Fraction{fraction.Zero, fraction.One, fraction.Zero})
	ok, err = eqsolver.VerifyTestOnly(original, bad)
	require.NoError(t, err)
	require.False(t, ok)

	// An unreduced RHS still matches after reduction.
	require.NoError(t, original.Set(0, 2, fraction.MustNew(6, 2)))
	ok, err = eqsolver.VerifyTestOnly(original, good)
	require.NoError(t, err)
	require.True(t, ok)

	huge := fraction.MustNew(1<<16, 1)
	wide := mustGrid(t, []fraction.Fraction{huge, fraction.One})
	candidate := mustGrid(t, []fraction.Fraction{fraction.One, huge})
	_, err = eqsolver.VerifyTestOnly(wide, candidate) // 2^16 × 2^16 = 2^32
	require.ErrorIs(t, err, fraction.ErrOverflow)
}

// mustGrid builds an augmented grid from fraction rows.
func mustGrid(t *testing.T, rows ...[]fraction.Fraction) *matrix.Augmented {
	t.Helper()
	m, err := matrix.NewAugmented(len(rows))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}
