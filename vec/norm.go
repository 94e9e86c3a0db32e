// SPDX-License-Identifier: MIT

package vec

import "math"

// maxAbs returns max |xᵢ|, or NaN if any component is NaN.
func maxAbs(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		if a := math.Abs(x); a > s || a != a {
			s = a
		}
		if s != s {
			break
		}
	}

	return s
}

// norm returns the Euclidean norm of xs. Components are divided by the
// largest magnitude before squaring, so finite input never overflows to +Inf
// or underflows to zero.
func norm(xs []float64) float64 {
	s := maxAbs(xs)
	if s == 0 || math.IsInf(s, 0) {
		return s
	}
	var sum float64
	for _, x := range xs {
		q := x / s
		sum += q * q
	}

	return s * math.Sqrt(sum)
}

// normalizeInto writes xs/|xs| to out and reports false if xs is zero.
// xs is scaled by its largest magnitude first, then by the length of the
// scaled vector.
func normalizeInto(out, xs []float64) bool {
	s := maxAbs(xs)
	if s == 0 {
		return false
	}
	var sum float64
	for i, x := range xs {
		out[i] = x / s
		sum += out[i] * out[i]
	}
	l := math.Sqrt(sum)
	for i := range out {
		out[i] /= l
	}

	return true
}
