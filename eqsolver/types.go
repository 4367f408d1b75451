// SPDX-License-Identifier: MIT

package eqsolver

import (
	"errors"
	"fmt"
)

// Outcome is the terminal classification of a Solve call.
// The numeric values are stable and start at 1.
type Outcome int

const (
	// Solved means a unique solution was found and verified.
	Solved Outcome = iota + 1

	// NoSolutions means the system is inconsistent.
	NoSolutions

	// InfiniteSolutions means the system is consistent but underdetermined.
	InfiniteSolutions

	// MemoryError means grid storage could not be acquired.
	MemoryError

	// Overflow means an exact intermediate exceeded the 32-bit magnitude bounds.
	Overflow
)

var outcomeNames = [...]string{
	Solved:            "solved",
	NoSolutions:       "no_solutions",
	InfiniteSolutions: "infinite_solutions",
	MemoryError:       "memory_error",
	Overflow:          "overflow",
}

// String returns the snake_case name used in logs, metrics labels and span attributes.
func (o Outcome) String() string {
	if o < Solved || o > Overflow {
		return fmt.Sprintf("outcome(%d)", int(o))
	}

	return outcomeNames[o]
}

// Strategy selects how a pivot column is cleared from the other rows.
// Both strategies produce the same exact values whenever neither overflows.
type Strategy int

const (
	// StrategySubtract computes target -= m × pivotRow directly.
	StrategySubtract Strategy = iota

	// StrategySignFlip negates the pivot row, then for every target multiplies
	// it by m, adds it in and divides it back by m, and finally negates it again.
	// It needs only add/multiply/divide but can overflow on the divide-back step
	// where StrategySubtract would not.
	StrategySignFlip
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("eqsolver: unknown strategy")

// String returns "subtract" or "signflip".
func (s Strategy) String() string {
	switch s {
	case StrategySubtract:
		return "subtract"
	case StrategySignFlip:
		return "signflip"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name produced by Strategy.String back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "subtract":
		return StrategySubtract, nil
	case "signflip":
		return StrategySignFlip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (s Strategy) valid() bool { return s == StrategySubtract || s == StrategySignFlip }
