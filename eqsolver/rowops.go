// SPDX-License-Identifier: MIT

// Package eqsolver - row operations on the working grid.
//
// These mirror the matrix row operations with 1-based rows so callers can
// inspect or replay elimination steps by hand. Semantics are identical: cells
// are processed left to right and the first overflow stops the operation,
// leaving earlier cells updated. An overflow also raises Overflowed().

package eqsolver

import (
	"errors"

	"github.com/katalvlaran/eqsolve/fraction"
)

// SwapRows exchanges working rows r1 and r2 in O(1).
func (s *Solver) SwapRows(r1, r2 int) error {
	if err := s.checkRows(ctxSwapRows, r1, r2); err != nil {
		return err
	}

	return s.working.SwapRows(r1-1, r2-1)
}

// MultiplyRow multiplies every cell of working row r by f.
func (s *Solver) MultiplyRow(r int, f fraction.Fraction) error {
	if err := s.checkRow(ctxMultiplyRow, r); err != nil {
		return err
	}

	return s.noteOverflow(ctxMultiplyRow, s.working.MultiplyRow(r-1, f))
}

// DivideRow divides every cell of working row r by f. A zero f leaves the row unchanged.
func (s *Solver) DivideRow(r int, f fraction.Fraction) error {
	if err := s.checkRow(ctxDivideRow, r); err != nil {
		return err
	}

	return s.noteOverflow(ctxDivideRow, s.working.DivideRow(r-1, f))
}

// AddRows adds working row src into working row dst.
func (s *Solver) AddRows(dst, src int) error {
	if err := s.checkRows(ctxAddRows, dst, src); err != nil {
		return err
	}

	return s.noteOverflow(ctxAddRows, s.working.AddRows(dst-1, src-1))
}

func (s *Solver) checkRows(tag string, r1, r2 int) error {
	if err := s.checkRow(tag, r1); err != nil {
		return err
	}

	return s.checkRow(tag, r2)
}

// noteOverflow raises the overflow signal when err carries ErrOverflow.
func (s *Solver) noteOverflow(tag string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrOverflow) {
		s.overflow = true
	}

	return solverErrorf(tag, err)
}
