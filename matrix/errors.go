// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// coordinates) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Overflow is not
// redefined here: row operations return fraction.ErrOverflow wrapped with the
// row/column where it was detected, so callers match it with errors.Is.

var (
	// ErrInvalidDimensions indicates a size outside [0, MaxSize].
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Augmented was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates operands of different sizes (CopyFrom).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAllocation is returned by an Allocator that cannot provide storage.
	ErrAllocation = errors.New("matrix: allocation failed")
)
