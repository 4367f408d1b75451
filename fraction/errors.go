// SPDX-License-Identifier: MIT
// Package fraction: sentinel error set.
// Every message is prefixed with "fraction: ..." so it stays greppable after
// wrapping by the matrix and eqsolver layers.

package fraction

import "errors"

var (
	// ErrOverflow is returned when the exact result of an operation cannot be
	// represented within the 32-bit magnitude bounds of a Fraction.
	ErrOverflow = errors.New("fraction: arithmetic overflow")

	// ErrSyntax is returned by Parse for text that is not "n" or "n/d".
	ErrSyntax = errors.New("fraction: invalid syntax")
)
