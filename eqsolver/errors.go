// SPDX-License-Identifier: MIT
// Package eqsolver: sentinel error set.
// Every message is prefixed with "eqsolver: ..."; callers match with errors.Is.

package eqsolver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eqsolve/fraction"
)

var (
	// ErrOutOfRange indicates a 1-based coordinate outside the current system.
	ErrOutOfRange = errors.New("eqsolver: coordinate out of range")

	// ErrEqCount indicates an equation count outside [0, matrix.MaxSize].
	ErrEqCount = errors.New("eqsolver: equation count out of range")

	// ErrMemory indicates that grid storage could not be acquired. The Solver
	// stays unusable until Cleanup or a successful SetSystemEqCount.
	ErrMemory = errors.New("eqsolver: storage allocation failed")

	// ErrOverflow is fraction.ErrOverflow, re-exported for callers that only
	// import this package.
	ErrOverflow = fraction.ErrOverflow
)

// solverErrorf wraps err with the Solver method that produced it.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("Solver.%s: %w", tag, err)
}
