// SPDX-License-Identifier: MIT
// Package matrix: centralized index validators.
// All bounds checks go through these helpers so every public method reports
// out-of-range access the same way: a wrapped ErrOutOfRange carrying the
// method tag and the offending coordinates.

package matrix

// checkRow validates 0 <= r < N.
func (a *Augmented) checkRow(tag string, r int) error {
	if r < 0 || r >= a.n {
		return augErrorf(tag, r, -1, ErrOutOfRange)
	}

	return nil
}

// checkCell validates 0 <= row < N and 0 <= col <= N.
func (a *Augmented) checkCell(tag string, row, col int) error {
	if row < 0 || row >= a.n || col < 0 || col > a.n {
		return augErrorf(tag, row, col, ErrOutOfRange)
	}

	return nil
}

// checkRows validates two row indices at once (binary row operations).
func (a *Augmented) checkRows(tag string, r1, r2 int) error {
	if r1 < 0 || r1 >= a.n || r2 < 0 || r2 >= a.n {
		return augErrorf(tag, r1, r2, ErrOutOfRange)
	}

	return nil
}
