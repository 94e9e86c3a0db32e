// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Private row-major micro-kernels shared by Mat22, Mat33 and Mat44 so the
//     index formula n*i + j is written once.
//
// Determinism:
//   - Fixed loop orders; every sum runs over k = 0..n-1 so that transposed
//     variants add the same products in the same order as their explicit
//     counterparts.
//   - Callers pass slices of stack arrays; kernels never retain them.

package mat

import (
	"math"
	"strconv"
	"strings"

	"github.com/TypedLambda/graphmath/scalar"
)

// kAdd computes out = a + b element-wise.
func kAdd(out, a, b []float64) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// kSub computes out = a - b element-wise.
func kSub(out, a, b []float64) {
	for i := range out {
		out[i] = a[i] - b[i]
	}
}

// kScale computes out = a * k.
func kScale(out, a []float64, k float64) {
	for i := range out {
		out[i] = a[i] * k
	}
}

// kRound rounds every element; digits must already be validated.
func kRound(out, a []float64, digits int) {
	for i := range out {
		out[i] = scalar.MustRound(a[i], digits)
	}
}

// kMul computes out[i,j] = Σₖ a[i,k]·b[k,j].
func kMul(out, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[n*i+k] * b[n*k+j]
			}
			out[n*i+j] = s
		}
	}
}

// kMulT computes out = a · bᵗ, i.e. out[i,j] = Σₖ a[i,k]·b[j,k].
func kMulT(out, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[n*i+k] * b[n*j+k]
			}
			out[n*i+j] = s
		}
	}
}

// kTranspose writes aᵗ into out. out and a must not alias.
func kTranspose(out, a []float64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[n*j+i] = a[n*i+j]
		}
	}
}

// kApply computes out = m · v (column vector): out[i] = Σⱼ m[i,j]·v[j].
func kApply(out, m, v []float64, n int) {
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += m[n*i+j] * v[j]
		}
		out[i] = s
	}
}

// kApplyCols computes out[j] = Σᵢ v[i]·m[i,j]. This is both v · m (row
// vector) and mᵗ · v (column vector).
func kApplyCols(out, m, v []float64, n int) {
	for j := 0; j < n; j++ {
		var s float64
		for i := 0; i < n; i++ {
			s += v[i] * m[n*i+j]
		}
		out[j] = s
	}
}

// kFrobeniusDist returns sqrt(Σ (aᵢ - bᵢ)²).
func kFrobeniusDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

// kIsIdentity reports whether a is exactly the n×n identity.
func kIsIdentity(a []float64, n int) bool {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if a[n*i+j] != want {
				return false
			}
		}
	}

	return true
}

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// kString renders one bracketed row per line.
func kString(a []float64, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(a[n*i+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// validIndex reports whether 0 <= i,j < n.
func validIndex(i, j, n int) bool {
	return i >= 0 && i < n && j >= 0 && j < n
}
