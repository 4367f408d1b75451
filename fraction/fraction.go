// SPDX-License-Identifier: MIT

// Package fraction - value type, constructors and predicates.
//
// Purpose:
//   - Define Fraction {Num, Den, Neg} with 0/0 as the canonical zero.
//   - Provide validated constructors that never emit a malformed value.
//   - Offer read-only helpers (IsZero, IsOne, Equal, String, Rat).

package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Magnitude bounds used by every overflow check in this package.
const (
	// MaxMagnitude is the largest numerator or denominator a Fraction can hold.
	MaxMagnitude = math.MaxUint32

	// MinSigned and MaxSigned bound the signed intermediates of Add when either
	// operand is negative.
	MinSigned = math.MinInt32
	MaxSigned = math.MaxInt32
)

// Fraction is an exact rational number: (-1)^Neg * Num/Den.
//   - Num, Den are unsigned magnitudes.
//   - Neg carries the sign; it is meaningless when the value is zero.
//   - Fraction{} (Num=0, Den=0) is the canonical zero.
//
// A stored Fraction never has Den == 0 with Num != 0. Values are not required
// to be in lowest terms unless they are the result of an operation.
type Fraction struct {
	Num uint32 // numerator magnitude
	Den uint32 // denominator magnitude
	Neg bool   // true when the value is negative
}

var (
	// Zero is the canonical exact zero (0/0).
	Zero = Fraction{}

	// One is +1/1.
	One = Fraction{Num: 1, Den: 1}

	// NegOne is -1/1.
	NegOne = Fraction{Num: 1, Den: 1, Neg: true}
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Fraction{}

// FromInt converts an integer to a Fraction with denominator 1.
// Zero maps to the canonical zero, not 0/1.
// Returns ErrOverflow when |v| exceeds MaxMagnitude.
func FromInt(v int64) (Fraction, error) {
	if v == 0 {
		return Zero, nil
	}
	mag, neg := absInt64(v)
	if mag > MaxMagnitude {
		return Zero, ErrOverflow
	}

	return Fraction{Num: uint32(mag), Den: 1, Neg: neg}, nil
}

// New builds num/den without reducing it.
//
// Behavior highlights:
//   - den == 0 forces the canonical zero (divide-by-zero prevention), whatever num is.
//   - num == 0 is the canonical zero as well.
//   - sign is (num < 0) XOR (den < 0); magnitudes are stored as absolute values.
//
// Errors:
//   - ErrOverflow when either magnitude exceeds MaxMagnitude.
func New(num, den int64) (Fraction, error) {
	if den == 0 || num == 0 {
		return Zero, nil
	}
	nm, nneg := absInt64(num)
	dm, dneg := absInt64(den)
	if nm > MaxMagnitude || dm > MaxMagnitude {
		return Zero, ErrOverflow
	}

	return Fraction{Num: uint32(nm), Den: uint32(dm), Neg: nneg != dneg}, nil
}

// MustNew is New for literals known to be in range; it panics on error.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("fraction: MustNew(%d, %d): %v", num, den, err))
	}

	return f
}

// IsZero reports whether f is an exact zero.
func (f Fraction) IsZero() bool { return f.Num == 0 }

// IsOne reports whether f is exactly +1 in stored form (1/1, non-negative).
func (f Fraction) IsOne() bool { return f.Num == 1 && f.Den == 1 && !f.Neg }

// IsNegative reports whether f is strictly below zero.
func (f Fraction) IsNegative() bool { return f.Neg && f.Num != 0 }

// Negate returns -f. Zero stays the canonical zero.
func (f Fraction) Negate() Fraction {
	if f.IsZero() {
		return Zero
	}
	f.Neg = !f.Neg

	return f
}

// Equal reports whether f and g denote the same rational value.
// Both sides are reduced first, so 2/4 equals 1/2; any two zeros are equal.
func (f Fraction) Equal(g Fraction) bool {
	ra, rb := Reduce(f), Reduce(g)
	if ra.IsZero() || rb.IsZero() {
		return ra.IsZero() && rb.IsZero()
	}

	return ra.Num == rb.Num && ra.Den == rb.Den && ra.Neg == rb.Neg
}

// Signed returns the numerator with the sign folded in, and the denominator.
func (f Fraction) Signed() (num int64, den int64) {
	num = int64(f.Num)
	if f.IsNegative() {
		num = -num
	}

	return num, int64(f.Den)
}

// Rat converts f to a big.Rat. The canonical zero maps to 0.
func (f Fraction) Rat() *big.Rat {
	if f.IsZero() || f.Den == 0 {
		return new(big.Rat)
	}
	num, den := f.Signed()

	return big.NewRat(num, den)
}

// String renders f as "n", "-n", "n/d" or "-n/d"; zero renders as "0".
func (f Fraction) String() string {
	if f.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if f.Neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(uint64(f.Num), 10))
	if f.Den != 1 {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(uint64(f.Den), 10))
	}

	return sb.String()
}

// Parse reads "n" or "n/d" (surrounding spaces allowed) through New.
// A zero denominator yields the canonical zero, as New does.
func Parse(s string) (Fraction, error) {
	numText, denText, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !hasDen {
		return FromInt(num)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return New(num, den)
}

// absInt64 returns |v| as uint64 and whether v was negative.
// math.MinInt64 is handled without overflow.
func absInt64(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-(v + 1)) + 1, true
	}

	return uint64(v), false
}
