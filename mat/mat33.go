// SPDX-License-Identifier: MIT

package mat

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
	"github.com/TypedLambda/graphmath/vec"
)

// SingularTolerance is the |det| below which Inverse reports ErrSingular.
const SingularTolerance = 1e-12

// Mat33 is a 3×3 matrix in row-major order: m[3*i + j] is row i, column j.
//
// As an affine 2D transform it follows the row-vector convention:
//
//	| a  b  0 |
//	| c  d  0 |
//	| tx ty 1 |
//
// maps (x, y, 1) to (a*x + c*y + tx, b*x + d*y + ty, 1) via ApplyLeft.
type Mat33 [9]float64

// Identity33 returns the multiplicative identity.
func Identity33() Mat33 {
	return Mat33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Zero33 returns the additive identity.
func Zero33() Mat33 {
	return Mat33{}
}

// Mat33FromSlice reads the first nine elements of s in row-major order.
// Extra elements are ignored; fewer than nine yield ErrArity.
func Mat33FromSlice(s []float64) (Mat33, error) {
	var m Mat33
	if len(s) < len(m) {
		return Mat33{}, arityErrorf("Mat33FromSlice", len(m), len(s))
	}
	copy(m[:], s)

	return m, nil
}

// Mat33FromRows builds a matrix whose rows are r0, r1, r2.
func Mat33FromRows(r0, r1, r2 vec.Vec3) Mat33 {
	return Mat33{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}
}

// Mat33FromCols builds a matrix whose columns are c0, c1, c2.
func Mat33FromCols(c0, c1, c2 vec.Vec3) Mat33 {
	return Mat33{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}
}

// UniformScale33 returns diag(k, k, k).
func UniformScale33(k float64) Mat33 {
	return Scale33(k, k, k)
}

// Scale33 returns diag(sx, sy, sz).
func Scale33(sx, sy, sz float64) Mat33 {
	return Mat33{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	}
}

// Translate33 returns the 2D translation by (tx, ty) for row vectors: the
// offset lives in the last row.
func Translate33(tx, ty float64) Mat33 {
	return Mat33{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotate33 returns the counter-clockwise rotation by theta radians about
// the Z axis for row vectors, so Rotate33(π/2).ApplyLeft((1,0,0)) ≈ (0,1,0).
func Rotate33(theta float64) Mat33 {
	s, c := math.Sincos(theta)
	return Mat33{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Add returns m + b.
func (m Mat33) Add(b Mat33) Mat33 {
	var out Mat33
	kAdd(out[:], m[:], b[:])
	return out
}

// Sub returns m − b.
func (m Mat33) Sub(b Mat33) Mat33 {
	var out Mat33
	kSub(out[:], m[:], b[:])
	return out
}

// Scale returns every element multiplied by k.
func (m Mat33) Scale(k float64) Mat33 {
	var out Mat33
	kScale(out[:], m[:], k)
	return out
}

// Round rounds every element to digits fractional digits using
// round-half-away-from-zero (see package scalar).
func (m Mat33) Round(digits int) (Mat33, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Mat33{}, matrixErrorf("Mat33.Round", err)
	}
	var out Mat33
	kRound(out[:], m[:], digits)

	return out, nil
}

// Multiply returns the product m · b.
func (m Mat33) Multiply(b Mat33) Mat33 {
	var out Mat33
	kMul(out[:], m[:], b[:], 3)
	return out
}

// MultiplyTranspose returns m · bᵗ without building bᵗ. The result equals
// m.Multiply(b.Transpose()) exactly.
func (m Mat33) MultiplyTranspose(b Mat33) Mat33 {
	var out Mat33
	kMulT(out[:], m[:], b[:], 3)
	return out
}

// Transpose returns mᵗ.
func (m Mat33) Transpose() Mat33 {
	var out Mat33
	kTranspose(out[:], m[:], 3)
	return out
}

// Row0 returns row 0.
func (m Mat33) Row0() vec.Vec3 { return vec.Vec3{m[0], m[1], m[2]} }

// Row1 returns row 1.
func (m Mat33) Row1() vec.Vec3 { return vec.Vec3{m[3], m[4], m[5]} }

// Row2 returns row 2.
func (m Mat33) Row2() vec.Vec3 { return vec.Vec3{m[6], m[7], m[8]} }

// Col0 returns column 0.
func (m Mat33) Col0() vec.Vec3 { return vec.Vec3{m[0], m[3], m[6]} }

// Col1 returns column 1.
func (m Mat33) Col1() vec.Vec3 { return vec.Vec3{m[1], m[4], m[7]} }

// Col2 returns column 2.
func (m Mat33) Col2() vec.Vec3 { return vec.Vec3{m[2], m[5], m[8]} }

// Diag returns (m00, m11, m22).
func (m Mat33) Diag() vec.Vec3 { return vec.Vec3{m[0], m[4], m[8]} }

// Row returns row i, or ErrOutOfRange.
func (m Mat33) Row(i int) (vec.Vec3, error) {
	if !validIndex(i, 0, 3) {
		return vec.Vec3{}, indexErrorf("Mat33.Row", i, 0, ErrOutOfRange)
	}

	return vec.Vec3{m[3*i], m[3*i+1], m[3*i+2]}, nil
}

// Col returns column j, or ErrOutOfRange.
func (m Mat33) Col(j int) (vec.Vec3, error) {
	if !validIndex(0, j, 3) {
		return vec.Vec3{}, indexErrorf("Mat33.Col", 0, j, ErrOutOfRange)
	}

	return vec.Vec3{m[j], m[3+j], m[6+j]}, nil
}

// At returns the element at row i, column j (flat index 3*i + j).
// Returns ErrOutOfRange if i or j is outside [0, 3).
func (m Mat33) At(i, j int) (float64, error) {
	if !validIndex(i, j, 3) {
		return 0, indexErrorf("Mat33.At", i, j, ErrOutOfRange)
	}

	return m[3*i+j], nil
}

// Apply returns m · v, treating v as a column vector.
func (m Mat33) Apply(v vec.Vec3) vec.Vec3 {
	var out vec.Vec3
	kApply(out[:], m[:], v[:], 3)
	return out
}

// ApplyTranspose returns mᵗ · v without building mᵗ.
func (m Mat33) ApplyTranspose(v vec.Vec3) vec.Vec3 {
	var out vec.Vec3
	kApplyCols(out[:], m[:], v[:], 3)
	return out
}

// ApplyLeft returns v · m, treating v as a row vector. This is the
// convention Translate33 and Rotate33 are built for.
func (m Mat33) ApplyLeft(v vec.Vec3) vec.Vec3 {
	var out vec.Vec3
	kApplyCols(out[:], m[:], v[:], 3)
	return out
}

// ApplyLeftTranspose returns v · mᵗ.
func (m Mat33) ApplyLeftTranspose(v vec.Vec3) vec.Vec3 {
	var out vec.Vec3
	kApply(out[:], m[:], v[:], 3)
	return out
}

// TransformPoint applies the affine transform to p as (x, y, 1) · m.
func (m Mat33) TransformPoint(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		p[0]*m[0] + p[1]*m[3] + m[6],
		p[0]*m[1] + p[1]*m[4] + m[7],
	}
}

// TransformVector applies the linear part only, as (x, y, 0) · m.
func (m Mat33) TransformVector(d vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		d[0]*m[0] + d[1]*m[3],
		d[0]*m[1] + d[1]*m[4],
	}
}

// Trace returns m00 + m11 + m22.
func (m Mat33) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Determinant returns det(m) by cofactor expansion along row 0.
func (m Mat33) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns m⁻¹ via the adjugate.
//
// Errors:
//   - ErrSingular when |det| < SingularTolerance; the zero matrix is returned.
//
// Complexity: O(1), no pivoting.
func (m Mat33) Inverse() (Mat33, error) {
	d := m.Determinant()
	if math.Abs(d) < SingularTolerance || math.IsNaN(d) {
		graphmath.Logger().Debug("mat: singular matrix", "dim", 3, "det", d)
		return Mat33{}, matrixErrorf("Mat33.Inverse", ErrSingular)
	}
	inv := 1 / d

	return Mat33{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// Equal reports whether the Frobenius distance between m and b is strictly
// less than eps, mirroring vec.Vec3.Compare.
func (m Mat33) Equal(b Mat33, eps float64) bool {
	return kFrobeniusDist(m[:], b[:]) < eps
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat33) IsIdentity() bool {
	return kIsIdentity(m[:], 3)
}

// Extend embeds m as the upper-left block of a 4×4 matrix with 1 at (3,3).
func (m Mat33) Extend() Mat44 {
	return Mat44{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// String renders one row per line.
func (m Mat33) String() string {
	return kString(m[:], 3)
}
