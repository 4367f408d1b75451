// SPDX-License-Identifier: MIT

package sysfile

import "errors"

var (
	// ErrEmpty indicates a document without equations.
	ErrEmpty = errors.New("sysfile: no equations")

	// ErrNotSquare indicates a row whose length is not N+1.
	ErrNotSquare = errors.New("sysfile: system is not square")

	// ErrBadCoefficient indicates an entry that is not an int16 or "num/den" pair.
	ErrBadCoefficient = errors.New("sysfile: invalid coefficient")
)
