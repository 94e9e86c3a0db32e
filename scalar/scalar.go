// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the tolerance used by approximate comparisons when
	// the caller has no better bound.
	DefaultEpsilon = 1e-9

	// MaxDigits bounds the |digits| argument of Round.
	MaxDigits = 15
)

// ValidateDigits reports ErrInvalidDigits when digits is outside
// [-MaxDigits, MaxDigits].
func ValidateDigits(digits int) error {
	if digits < -MaxDigits || digits > MaxDigits {
		return fmt.Errorf("digits=%d: %w", digits, ErrInvalidDigits)
	}

	return nil
}

// Round rounds x to the given number of fractional decimal digits using
// round-half-away-from-zero.
//
// Implementation:
//   - Stage 1: validate digits against MaxDigits.
//   - Stage 2: NaN and ±Inf pass through unchanged.
//   - Stage 3: scale by 10^digits, math.Round, scale back.
//
// Notes:
//   - A negative digits value rounds to tens, hundreds, ...
//   - The result is the nearest float64 to the decimal value, so printing it
//     may still show binary artefacts for long expansions.
//
// Complexity: O(1).
func Round(x float64, digits int) (float64, error) {
	if err := ValidateDigits(digits); err != nil {
		return 0, err
	}

	return round(x, digits), nil
}

// MustRound is Round for callers that have already validated digits.
// It panics on ErrInvalidDigits.
func MustRound(x float64, digits int) float64 {
	r, err := Round(x, digits)
	if err != nil {
		panic(err)
	}

	return r
}

func round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if digits == 0 {
		return math.Round(x)
	}
	if digits < 0 {
		p := math.Pow10(-digits)
		return math.Round(x/p) * p
	}
	p := math.Pow10(digits)
	r := math.Round(x*p) / p
	// x*p overflowed: x already has no fractional part at this precision.
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}

	return r
}

// NearlyEqual reports whether |a-b| < eps. Equal infinities compare equal.
func NearlyEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) < eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
