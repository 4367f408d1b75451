// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - SwapRows, MultiplyRow, DivideRow, AddRows, SubtractScaledRow, NegateRow.
//
// Contract:
//   - Cells are processed left to right (column 0 .. N).
//   - On the first overflow the operation stops: the failing cell and every
//     cell to its right keep their previous values; cells to its left already
//     hold new values. The returned error wraps fraction.ErrOverflow.
//   - Index errors are reported before any cell is touched.

package matrix

import "github.com/katalvlaran/eqsolve/fraction"

// SwapRows exchanges rows r1 and r2 by swapping their headers. O(1).
func (a *Augmented) SwapRows(r1, r2 int) error {
	if err := a.checkRows(ctxSwap, r1, r2); err != nil {
		return err
	}
	a.rows[r1], a.rows[r2] = a.rows[r2], a.rows[r1]

	return nil
}

// applyRow runs kernel(cell) over every cell of row r and stops at the first error.
func (a *Augmented) applyRow(tag string, r int, kernel func(fraction.Fraction) (fraction.Fraction, error)) error {
	if err := a.checkRow(tag, r); err != nil {
		return err
	}
	row := a.rows[r]
	for j := range row {
		v, err := kernel(row[j])
		if err != nil {
			return augErrorf(tag, r, j, err)
		}
		row[j] = v
	}

	return nil
}

// MultiplyRow sets row r to row r × f.
func (a *Augmented) MultiplyRow(r int, f fraction.Fraction) error {
	return a.applyRow(ctxMultiply, r, func(cell fraction.Fraction) (fraction.Fraction, error) {
		return fraction.Mul(cell, f)
	})
}

// DivideRow sets row r to row r ÷ f. A zero divisor leaves the row unchanged
// (see fraction.Div); callers divide by nonzero pivots only.
func (a *Augmented) DivideRow(r int, f fraction.Fraction) error {
	return a.applyRow(ctxDivide, r, func(cell fraction.Fraction) (fraction.Fraction, error) {
		return fraction.Div(cell, f)
	})
}

// AddRows sets row dst to row dst + row src, cell by cell.
func (a *Augmented) AddRows(dst, src int) error {
	if err := a.checkRows(ctxAdd, dst, src); err != nil {
		return err
	}
	to, from := a.rows[dst], a.rows[src]
	for j := range to {
		v, err := fraction.Add(to[j], from[j])
		if err != nil {
			return augErrorf(ctxAdd, dst, j, err)
		}
		to[j] = v
	}

	return nil
}

// SubtractScaledRow sets row dst to row dst − m × row src, cell by cell.
// Row src is never written, so dst == src is rejected as out of range.
//
// Implementation:
//   - Stage 1: validate both rows and dst != src.
//   - Stage 2: for each column j, p = m*src[j] then dst[j] = dst[j] − p.
//
// Complexity:
//   - Time O(N) kernel calls, Space O(1).
func (a *Augmented) SubtractScaledRow(dst, src int, m fraction.Fraction) error {
	if err := a.checkRows(ctxSubtract, dst, src); err != nil {
		return err
	}
	if dst == src {
		return augErrorf(ctxSubtract, dst, src, ErrOutOfRange)
	}
	to, from := a.rows[dst], a.rows[src]
	for j := range to {
		if from[j].IsZero() {
			continue
		}
		p, err := fraction.Mul(m, from[j])
		if err != nil {
			return augErrorf(ctxSubtract, dst, j, err)
		}
		v, err := fraction.Sub(to[j], p)
		if err != nil {
			return augErrorf(ctxSubtract, dst, j, err)
		}
		to[j] = v
	}

	return nil
}

// NegateRow flips the sign of every nonzero cell in row r. Zero cells stay
// the canonical zero.
func (a *Augmented) NegateRow(r int) error {
	if err := a.checkRow(ctxNegate, r); err != nil {
		return err
	}
	row := a.rows[r]
	for j := range row {
		row[j] = row[j].Negate()
	}

	return nil
}
