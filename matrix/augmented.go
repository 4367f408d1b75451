// SPDX-License-Identifier: MIT

// Package matrix - Augmented storage (row headers over a flat buffer) & safe accessors.
//
// Purpose:
//   - Provide an N×(N+1) fraction grid with O(1) row swaps.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewAugmented: O(N²) zero-init; At/Set/SwapRows: O(1); Clone/CopyFrom: O(N²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eqsolve/fraction"
)

// MaxSize is the largest supported number of equations (and unknowns).
const MaxSize = 65535

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxSwap     = "SwapRows"
	ctxMultiply = "MultiplyRow"
	ctxDivide   = "DivideRow"
	ctxAdd      = "AddRows"
	ctxSubtract = "SubtractScaledRow"
	ctxNegate   = "NegateRow"
	ctxCopy     = "CopyFrom"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// augErrorf wraps an error with a uniform Augmented context and callsite indices.
// It keeps the sentinel reachable through %w.
func augErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Augmented.%s(%d,%d): %w", method, row, col, err)
}

// Augmented is an N×(N+1) grid of fractions.
//   - n is the number of equations; every row has n+1 cells (last = RHS).
//   - buf is the contiguous backing store (len == n*(n+1)).
//   - rows[i] is a header slice into buf; swapping headers reorders rows.
type Augmented struct {
	n    int                   // equation count (rows)
	buf  []fraction.Fraction   // row-major backing storage
	rows [][]fraction.Fraction // row headers, each len n+1
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Augmented)(nil)

// NewAugmented allocates an n×(n+1) grid with every cell set to the canonical zero.
//
// Implementation:
//   - Stage 1: validate 0 <= n <= MaxSize.
//   - Stage 2: allocate the flat buffer (make() zero-fills = canonical zeros).
//   - Stage 3: carve one header per row.
//
// Errors:
//   - ErrInvalidDimensions when n is outside [0, MaxSize].
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewAugmented(n int) (*Augmented, error) {
	if n < 0 || n > MaxSize {
		return nil, ErrInvalidDimensions
	}
	cols := n + 1
	buf := make([]fraction.Fraction, n*cols)
	rows := make([][]fraction.Fraction, n)
	for i := 0; i < n; i++ {
		rows[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &Augmented{n: n, buf: buf, rows: rows}, nil
}

// Size returns N, the number of equations (rows).
func (a *Augmented) Size() int { return a.n }

// Cols returns N+1, the number of cells per row.
func (a *Augmented) Cols() int { return a.n + 1 }

// Cells returns the number of stored cells, N*(N+1).
func (a *Augmented) Cells() int { return len(a.buf) }

// At returns the cell at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (a *Augmented) At(row, col int) (fraction.Fraction, error) {
	if err := a.checkCell(ctxAt, row, col); err != nil {
		return fraction.Zero, err
	}

	return a.rows[row][col], nil
}

// Set stores f at (row, col) as given (no reduction).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (a *Augmented) Set(row, col int, f fraction.Fraction) error {
	if err := a.checkCell(ctxSet, row, col); err != nil {
		return err
	}
	a.rows[row][col] = f

	return nil
}

// Row returns the live cells of row r. Writes through the slice mutate the grid;
// the slice follows the row across later SwapRows calls.
func (a *Augmented) Row(r int) ([]fraction.Fraction, error) {
	if err := a.checkRow(ctxRow, r); err != nil {
		return nil, err
	}

	return a.rows[r], nil
}

// IsZeroRow reports whether every cell of row r, RHS included, is zero.
func (a *Augmented) IsZeroRow(r int) (bool, error) {
	if err := a.checkRow(ctxRow, r); err != nil {
		return false, err
	}
	for _, cell := range a.rows[r] {
		if !cell.IsZero() {
			return false, nil
		}
	}

	return true, nil
}

// CopyFrom overwrites a with the cells of src in src's current row order.
// Row headers of a are kept; only cell values are copied.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrDimensionMismatch when sizes differ.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (a *Augmented) CopyFrom(src *Augmented) error {
	if src == nil {
		return augErrorf(ctxCopy, 0, 0, ErrNilMatrix)
	}
	if src.n != a.n {
		return augErrorf(ctxCopy, src.n, a.n, ErrDimensionMismatch)
	}
	for i := 0; i < a.n; i++ {
		copy(a.rows[i], src.rows[i])
	}

	return nil
}

// Clone returns an independent deep copy with rows laid out in current order.
func (a *Augmented) Clone() *Augmented {
	c, _ := NewAugmented(a.n) // a.n already validated
	_ = c.CopyFrom(a)

	return c
}

// String renders one bracketed row per line, e.g. "[1, -1/2, 3]\n".
func (a *Augmented) String() string {
	var sb strings.Builder
	for _, row := range a.rows {
		sb.WriteString(_fmtRowOpen)
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(cell.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
