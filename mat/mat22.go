// SPDX-License-Identifier: MIT

package mat

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
	"github.com/TypedLambda/graphmath/vec"
)

// Mat22 is a 2×2 matrix in row-major order: m[2*i + j] is row i, column j.
// It carries linear 2D transforms (no translation).
type Mat22 [4]float64

// Identity22 returns the multiplicative identity.
func Identity22() Mat22 { return Mat22{1, 0, 0, 1} }

// Zero22 returns the additive identity.
func Zero22() Mat22 { return Mat22{} }

// Mat22FromSlice reads the first four elements of s; fewer yield ErrArity.
func Mat22FromSlice(s []float64) (Mat22, error) {
	var m Mat22
	if len(s) < len(m) {
		return Mat22{}, arityErrorf("Mat22FromSlice", len(m), len(s))
	}
	copy(m[:], s)

	return m, nil
}

// Mat22FromRows builds a matrix whose rows are r0 and r1.
func Mat22FromRows(r0, r1 vec.Vec2) Mat22 {
	return Mat22{r0[0], r0[1], r1[0], r1[1]}
}

// UniformScale22 returns diag(k, k).
func UniformScale22(k float64) Mat22 { return Mat22{k, 0, 0, k} }

// Scale22 returns diag(sx, sy).
func Scale22(sx, sy float64) Mat22 { return Mat22{sx, 0, 0, sy} }

// Rotate22 rotates counter-clockwise by theta radians for row vectors.
func Rotate22(theta float64) Mat22 {
	s, c := math.Sincos(theta)
	return Mat22{
		c, s,
		-s, c,
	}
}

// Add returns m + b.
func (m Mat22) Add(b Mat22) Mat22 {
	var out Mat22
	kAdd(out[:], m[:], b[:])
	return out
}

// Sub returns m − b.
func (m Mat22) Sub(b Mat22) Mat22 {
	var out Mat22
	kSub(out[:], m[:], b[:])
	return out
}

// Scale returns every element multiplied by k.
func (m Mat22) Scale(k float64) Mat22 {
	var out Mat22
	kScale(out[:], m[:], k)
	return out
}

// Round rounds every element to digits fractional digits.
func (m Mat22) Round(digits int) (Mat22, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Mat22{}, matrixErrorf("Mat22.Round", err)
	}
	var out Mat22
	kRound(out[:], m[:], digits)

	return out, nil
}

// Multiply returns m · b.
func (m Mat22) Multiply(b Mat22) Mat22 {
	var out Mat22
	kMul(out[:], m[:], b[:], 2)
	return out
}

// MultiplyTranspose returns m · bᵗ.
func (m Mat22) MultiplyTranspose(b Mat22) Mat22 {
	var out Mat22
	kMulT(out[:], m[:], b[:], 2)
	return out
}

// Transpose returns mᵗ.
func (m Mat22) Transpose() Mat22 {
	return Mat22{m[0], m[2], m[1], m[3]}
}

// Row0 returns row 0.
func (m Mat22) Row0() vec.Vec2 { return vec.Vec2{m[0], m[1]} }

// Row1 returns row 1.
func (m Mat22) Row1() vec.Vec2 { return vec.Vec2{m[2], m[3]} }

// Col0 returns column 0.
func (m Mat22) Col0() vec.Vec2 { return vec.Vec2{m[0], m[2]} }

// Col1 returns column 1.
func (m Mat22) Col1() vec.Vec2 { return vec.Vec2{m[1], m[3]} }

// Diag returns the main diagonal.
func (m Mat22) Diag() vec.Vec2 { return vec.Vec2{m[0], m[3]} }

// At returns the element at row i, column j, or ErrOutOfRange.
func (m Mat22) At(i, j int) (float64, error) {
	if !validIndex(i, j, 2) {
		return 0, indexErrorf("Mat22.At", i, j, ErrOutOfRange)
	}

	return m[2*i+j], nil
}

// Apply returns m · v.
func (m Mat22) Apply(v vec.Vec2) vec.Vec2 {
	var out vec.Vec2
	kApply(out[:], m[:], v[:], 2)
	return out
}

// ApplyTranspose returns mᵗ · v.
func (m Mat22) ApplyTranspose(v vec.Vec2) vec.Vec2 {
	var out vec.Vec2
	kApplyCols(out[:], m[:], v[:], 2)
	return out
}

// ApplyLeft returns v · m.
func (m Mat22) ApplyLeft(v vec.Vec2) vec.Vec2 {
	var out vec.Vec2
	kApplyCols(out[:], m[:], v[:], 2)
	return out
}

// ApplyLeftTranspose returns v · mᵗ.
func (m Mat22) ApplyLeftTranspose(v vec.Vec2) vec.Vec2 {
	var out vec.Vec2
	kApply(out[:], m[:], v[:], 2)
	return out
}

// Trace returns m00 + m11.
func (m Mat22) Trace() float64 { return m[0] + m[3] }

// Determinant returns m00·m11 − m01·m10.
func (m Mat22) Determinant() float64 { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns m⁻¹, or the zero matrix and ErrSingular.
func (m Mat22) Inverse() (Mat22, error) {
	d := m.Determinant()
	if math.Abs(d) < SingularTolerance || math.IsNaN(d) {
		graphmath.Logger().Debug("mat: singular matrix", "dim", 2, "det", d)
		return Mat22{}, matrixErrorf("Mat22.Inverse", ErrSingular)
	}
	inv := 1 / d

	return Mat22{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}, nil
}

// Equal reports whether the Frobenius distance is strictly less than eps.
func (m Mat22) Equal(b Mat22, eps float64) bool {
	return kFrobeniusDist(m[:], b[:]) < eps
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat22) IsIdentity() bool { return kIsIdentity(m[:], 2) }

// String renders one row per line.
func (m Mat22) String() string { return kString(m[:], 2) }
