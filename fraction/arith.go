// SPDX-License-Identifier: MIT

// Package fraction - overflow-checked arithmetic kernels.
//
// Purpose:
//   - Reduce, Mul, Div, Add, Sub over Fraction.
//   - Exact overflow detection through widened (64-bit) intermediates.
//
// Contract shared by all kernels:
//   - On overflow return (Zero, ErrOverflow) at once; no partial result.
//   - A malformed operand (Den == 0 with Num != 0) that would produce a zero
//     denominator makes the kernel return its first operand unaltered.
//   - Every other result is passed through Reduce before it is returned.

package fraction

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(0, 0) is 0.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Reduce returns f in lowest terms.
//
// Behavior highlights:
//   - Zero (Num == 0 or Den == 0) becomes the canonical zero.
//   - Num == Den short-circuits to ±1/1 with the sign preserved.
//   - Otherwise both magnitudes are divided by GCD(Num, Den).
//
// Complexity:
//   - Time O(log min(Num, Den)), Space O(1).
func Reduce(f Fraction) Fraction {
	if f.Num == 0 || f.Den == 0 {
		return Zero
	}
	if f.Num == f.Den {
		return Fraction{Num: 1, Den: 1, Neg: f.Neg}
	}
	g := GCD(f.Num, f.Den)

	return Fraction{Num: f.Num / g, Den: f.Den / g, Neg: f.Neg}
}

// mulMagnitude multiplies two magnitudes in 64 bits and reports whether the
// product still fits MaxMagnitude.
func mulMagnitude(x, y uint32) (uint32, bool) {
	p := uint64(x) * uint64(y)
	if p > MaxMagnitude {
		return 0, false
	}

	return uint32(p), true
}

// finish applies the shared zero-denominator fallback and reduction.
func finish(result, fallback Fraction) Fraction {
	if result.Num != 0 && result.Den == 0 {
		return fallback
	}

	return Reduce(result)
}

// Mul returns a*b.
//
// Implementation:
//   - Stage 1: numerator a.Num*b.Num, checked in uint64 against MaxMagnitude.
//   - Stage 2: denominator a.Den*b.Den, same check.
//   - Stage 3: sign = a.Neg XOR b.Neg; fallback/Reduce via finish.
//
// Errors:
//   - ErrOverflow when either product exceeds MaxMagnitude.
func Mul(a, b Fraction) (Fraction, error) {
	num, ok := mulMagnitude(a.Num, b.Num)
	if !ok {
		return Zero, ErrOverflow
	}
	den, ok := mulMagnitude(a.Den, b.Den)
	if !ok {
		return Zero, ErrOverflow
	}

	return finish(Fraction{Num: num, Den: den, Neg: a.Neg != b.Neg}, a), nil
}

// Div returns a/b by cross multiplication: (a.Num*b.Den) / (a.Den*b.Num).
// A zero divisor returns a unaltered; callers are expected to have excluded
// that case already (the elimination engine divides by nonzero pivots only).
//
// Errors:
//   - ErrOverflow when either cross product exceeds MaxMagnitude.
func Div(a, b Fraction) (Fraction, error) {
	if b.IsZero() {
		return a, nil
	}
	num, ok := mulMagnitude(a.Num, b.Den)
	if !ok {
		return Zero, ErrOverflow
	}
	den, ok := mulMagnitude(a.Den, b.Num)
	if !ok {
		return Zero, ErrOverflow
	}

	return finish(Fraction{Num: num, Den: den, Neg: a.Neg != b.Neg}, a), nil
}

// Add returns a+b over the common denominator a.Den*b.Den.
//
// Implementation:
//   - Stage 1: identity shortcut; a zero operand returns the other one unchanged.
//   - Stage 2 (both non-negative): unsigned cross products and their sum, each
//     checked against MaxMagnitude.
//   - Stage 2 (either negative): signed numerators, both cross terms and the
//     sum are each checked against [MinSigned, MaxSigned].
//   - Stage 3: denominator a.Den*b.Den checked like Mul; fallback/Reduce.
//
// Errors:
//   - ErrOverflow at the first intermediate that leaves its range.
//
// Notes:
//   - The signed path trades one bit of range for sign handling; a sum whose
//     magnitude lies in (MaxSigned, MaxMagnitude] overflows there by contract.
func Add(a, b Fraction) (Fraction, error) {
	if a.IsZero() {
		return b, nil
	}
	if b.IsZero() {
		return a, nil
	}

	var result Fraction
	if !a.Neg && !b.Neg {
		t1, ok := mulMagnitude(a.Num, b.Den)
		if !ok {
			return Zero, ErrOverflow
		}
		t2, ok := mulMagnitude(b.Num, a.Den)
		if !ok {
			return Zero, ErrOverflow
		}
		sum := uint64(t1) + uint64(t2)
		if sum > MaxMagnitude {
			return Zero, ErrOverflow
		}
		result.Num = uint32(sum)
	} else {
		x1, ok := signedNumerator(a)
		if !ok {
			return Zero, ErrOverflow
		}
		x2, ok := signedNumerator(b)
		if !ok {
			return Zero, ErrOverflow
		}
		// |x| <= 2^31 and Den < 2^32, so every product below fits int64.
		t1 := x1 * int64(b.Den)
		if !inSignedRange(t1) {
			return Zero, ErrOverflow
		}
		t2 := x2 * int64(a.Den)
		if !inSignedRange(t2) {
			return Zero, ErrOverflow
		}
		sum := t1 + t2
		if !inSignedRange(sum) {
			return Zero, ErrOverflow
		}
		if sum < 0 {
			result.Neg = true
			sum = -sum
		}
		result.Num = uint32(sum)
	}

	den, ok := mulMagnitude(a.Den, b.Den)
	if !ok {
		return Zero, ErrOverflow
	}
	result.Den = den

	return finish(result, a), nil
}

// Sub returns a-b as Add(a, -b).
func Sub(a, b Fraction) (Fraction, error) {
	return Add(a, b.Negate())
}

// signedNumerator folds the sign into the numerator and checks the signed range.
func signedNumerator(f Fraction) (int64, bool) {
	x := int64(f.Num)
	if f.Neg {
		x = -x
	}

	return x, inSignedRange(x)
}

func inSignedRange(x int64) bool {
	return x >= MinSigned && x <= MaxSigned
}
