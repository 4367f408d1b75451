// SPDX-License-Identifier: MIT

package eqsolver

import (
	"github.com/katalvlaran/eqsolve/fraction"
	"github.com/katalvlaran/eqsolve/matrix"
)

// verify substitutes the candidate solution held in column N of reduced into
// every equation of original and reports whether each one holds exactly,
// i.e. Σ_j original[i][j] × reduced[j][N] equals Reduce(original[i][N]).
//
// Errors:
//   - fraction.ErrOverflow from any product or partial sum.
//
// Complexity:
//   - Time O(N²) arithmetic kernels, Space O(N).
func verify(original, reduced *matrix.Augmented) (bool, error) {
	n := original.Size()
	x := make([]fraction.Fraction, n)
	for j := range x {
		x[j], _ = reduced.At(j, n)
	}

	for i := 0; i < n; i++ {
		eq, _ := original.Row(i)
		sum := fraction.Zero
		for j, v := range x {
			p, err := fraction.Mul(eq[j], v)
			if err != nil {
				return false, err
			}
			if sum, err = fraction.Add(sum, p); err != nil {
				return false, err
			}
		}
		if !sum.Equal(eq[n]) {
			return false, nil
		}
	}

	return true, nil
}
