// SPDX-License-Identifier: MIT

// Package fraction implements an exact rational value type with 32-bit
// magnitudes and overflow-checked arithmetic.
//
// What & Why:
//
//	Fraction keeps an unsigned numerator and denominator plus a separate sign
//	flag. Every arithmetic result is reduced by its GCD, and every product or
//	sum is computed in a widened 64-bit intermediate first, so a result that
//	does not fit the 32-bit magnitude is reported as ErrOverflow instead of
//	wrapping around silently.
//
// Zero:
//
//	The Go zero value Fraction{} (0/0) is the canonical exact zero. All
//	constructors and arithmetic results use it; sign is ignored on zero.
//
// Errors:
//
//	Operations return (Fraction, error). On overflow the value is the canonical
//	zero and the error matches ErrOverflow via errors.Is.
//
// Complexity:
//
//	Mul/Div/Add/Sub are O(log min(num, den)) due to the GCD reduction.
package fraction
