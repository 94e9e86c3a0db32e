// SPDX-License-Identifier: MIT

package mat

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
	"github.com/TypedLambda/graphmath/vec"
)

// Mat44 is a 4×4 matrix in row-major order: m[4*i + j] is row i, column j.
// As a 3D affine transform it follows the row-vector convention, with the
// translation in row 3.
type Mat44 [16]float64

// Identity44 returns the multiplicative identity.
func Identity44() Mat44 {
	return Mat44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero44 returns the additive identity.
func Zero44() Mat44 {
	return Mat44{}
}

// Mat44FromSlice reads the first sixteen elements of s in row-major order.
// Fewer than sixteen yield ErrArity.
func Mat44FromSlice(s []float64) (Mat44, error) {
	var m Mat44
	if len(s) < len(m) {
		return Mat44{}, arityErrorf("Mat44FromSlice", len(m), len(s))
	}
	copy(m[:], s)

	return m, nil
}

// Mat44FromRows builds a matrix from four row vectors.
func Mat44FromRows(r0, r1, r2, r3 vec.Vec4) Mat44 {
	var m Mat44
	copy(m[0:4], r0[:])
	copy(m[4:8], r1[:])
	copy(m[8:12], r2[:])
	copy(m[12:16], r3[:])

	return m
}

// Mat44FromCols builds a matrix from four column vectors.
func Mat44FromCols(c0, c1, c2, c3 vec.Vec4) Mat44 {
	return Mat44FromRows(c0, c1, c2, c3).Transpose()
}

// UniformScale44 returns diag(k, k, k, 1). The homogeneous element stays 1
// so the result composes with other affine transforms.
func UniformScale44(k float64) Mat44 {
	return Scale44(k, k, k)
}

// Scale44 returns diag(sx, sy, sz, 1).
func Scale44(sx, sy, sz float64) Mat44 {
	return Mat44{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Translate44 returns the translation by (tx, ty, tz) for row vectors.
func Translate44(tx, ty, tz float64) Mat44 {
	return Mat44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, tz, 1,
	}
}

// RotateX44 rotates by theta radians about +X (y towards z).
func RotateX44(theta float64) Mat44 {
	s, c := math.Sincos(theta)
	return Mat44{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY44 rotates by theta radians about +Y (z towards x).
func RotateY44(theta float64) Mat44 {
	s, c := math.Sincos(theta)
	return Mat44{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ44 rotates by theta radians about +Z (x towards y). Its upper-left
// block equals Rotate33(theta).
func RotateZ44(theta float64) Mat44 {
	s, c := math.Sincos(theta)
	return Mat44{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate44 returns the right-handed rotation by theta radians about axis,
// for row vectors. The axis is normalized first.
//
// Implementation:
//   - Stage 1: normalize axis; zero length → identity and ErrZeroLength.
//   - Stage 2: Rodrigues' formula, transposed for the row-vector convention.
//
// Rotate44(θ, (0,0,1)) matches RotateZ44(θ) to rounding.
func Rotate44(theta float64, axis vec.Vec3) (Mat44, error) {
	a, err := axis.Normalize()
	if err != nil {
		return Identity44(), matrixErrorf("Rotate44", ErrZeroLength)
	}
	x, y, z := a[0], a[1], a[2]
	s, c := math.Sincos(theta)
	t := 1 - c

	return Mat44{
		c + x*x*t, x*y*t + z*s, x*z*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, y*z*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}, nil
}

// Add returns m + b.
func (m Mat44) Add(b Mat44) Mat44 {
	var out Mat44
	kAdd(out[:], m[:], b[:])
	return out
}

// Sub returns m − b.
func (m Mat44) Sub(b Mat44) Mat44 {
	var out Mat44
	kSub(out[:], m[:], b[:])
	return out
}

// Scale returns every element multiplied by k.
func (m Mat44) Scale(k float64) Mat44 {
	var out Mat44
	kScale(out[:], m[:], k)
	return out
}

// Round rounds every element to digits fractional digits
// (round-half-away-from-zero).
func (m Mat44) Round(digits int) (Mat44, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Mat44{}, matrixErrorf("Mat44.Round", err)
	}
	var out Mat44
	kRound(out[:], m[:], digits)

	return out, nil
}

// Multiply returns m · b.
func (m Mat44) Multiply(b Mat44) Mat44 {
	var out Mat44
	kMul(out[:], m[:], b[:], 4)
	return out
}

// MultiplyTranspose returns m · bᵗ without building bᵗ.
func (m Mat44) MultiplyTranspose(b Mat44) Mat44 {
	var out Mat44
	kMulT(out[:], m[:], b[:], 4)
	return out
}

// Transpose returns mᵗ.
func (m Mat44) Transpose() Mat44 {
	var out Mat44
	kTranspose(out[:], m[:], 4)
	return out
}

// Row0 returns row 0.
func (m Mat44) Row0() vec.Vec4 { return vec.Vec4{m[0], m[1], m[2], m[3]} }

// Row1 returns row 1.
func (m Mat44) Row1() vec.Vec4 { return vec.Vec4{m[4], m[5], m[6], m[7]} }

// Row2 returns row 2.
func (m Mat44) Row2() vec.Vec4 { return vec.Vec4{m[8], m[9], m[10], m[11]} }

// Row3 returns row 3.
func (m Mat44) Row3() vec.Vec4 { return vec.Vec4{m[12], m[13], m[14], m[15]} }

// Col0 returns column 0.
func (m Mat44) Col0() vec.Vec4 { return vec.Vec4{m[0], m[4], m[8], m[12]} }

// Col1 returns column 1.
func (m Mat44) Col1() vec.Vec4 { return vec.Vec4{m[1], m[5], m[9], m[13]} }

// Col2 returns column 2.
func (m Mat44) Col2() vec.Vec4 { return vec.Vec4{m[2], m[6], m[10], m[14]} }

// Col3 returns column 3.
func (m Mat44) Col3() vec.Vec4 { return vec.Vec4{m[3], m[7], m[11], m[15]} }

// Diag returns (m00, m11, m22, m33).
func (m Mat44) Diag() vec.Vec4 { return vec.Vec4{m[0], m[5], m[10], m[15]} }

// Row returns row i, or ErrOutOfRange.
func (m Mat44) Row(i int) (vec.Vec4, error) {
	if !validIndex(i, 0, 4) {
		return vec.Vec4{}, indexErrorf("Mat44.Row", i, 0, ErrOutOfRange)
	}
	var r vec.Vec4
	copy(r[:], m[4*i:4*i+4])

	return r, nil
}

// Col returns column j, or ErrOutOfRange.
func (m Mat44) Col(j int) (vec.Vec4, error) {
	if !validIndex(0, j, 4) {
		return vec.Vec4{}, indexErrorf("Mat44.Col", 0, j, ErrOutOfRange)
	}

	return vec.Vec4{m[j], m[4+j], m[8+j], m[12+j]}, nil
}

// At returns the element at row i, column j (flat index 4*i + j), or
// ErrOutOfRange.
func (m Mat44) At(i, j int) (float64, error) {
	if !validIndex(i, j, 4) {
		return 0, indexErrorf("Mat44.At", i, j, ErrOutOfRange)
	}

	return m[4*i+j], nil
}

// Apply returns m · v (column vector).
func (m Mat44) Apply(v vec.Vec4) vec.Vec4 {
	var out vec.Vec4
	kApply(out[:], m[:], v[:], 4)
	return out
}

// ApplyTranspose returns mᵗ · v.
func (m Mat44) ApplyTranspose(v vec.Vec4) vec.Vec4 {
	var out vec.Vec4
	kApplyCols(out[:], m[:], v[:], 4)
	return out
}

// ApplyLeft returns v · m (row vector), the convention used by Translate44
// and the Rotate constructors.
func (m Mat44) ApplyLeft(v vec.Vec4) vec.Vec4 {
	var out vec.Vec4
	kApplyCols(out[:], m[:], v[:], 4)
	return out
}

// ApplyLeftTranspose returns v · mᵗ.
func (m Mat44) ApplyLeftTranspose(v vec.Vec4) vec.Vec4 {
	var out vec.Vec4
	kApply(out[:], m[:], v[:], 4)
	return out
}

// TransformPoint returns the xyz of (p, 1) · m. No perspective divide is
// applied; use ApplyLeft and vec.Vec4.PerspectiveDivide for projections.
func (m Mat44) TransformPoint(p vec.Vec3) vec.Vec3 {
	return m.ApplyLeft(p.Extend(1)).XYZ()
}

// TransformVector returns the xyz of (d, 0) · m, ignoring translation.
func (m Mat44) TransformVector(d vec.Vec3) vec.Vec3 {
	return m.ApplyLeft(d.Extend(0)).XYZ()
}

// Upper33 returns the upper-left 3×3 block (the linear part of an affine
// transform).
func (m Mat44) Upper33() Mat33 {
	return Mat33{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Trace returns the sum of the diagonal.
func (m Mat44) Trace() float64 {
	return m[0] + m[5] + m[10] + m[15]
}

// minors2 holds the twelve 2×2 minors of rows (0,1) and rows (2,3) shared
// by Determinant and Inverse.
type minors2 struct {
	b00, b01, b02, b03, b04, b05 float64
	b06, b07, b08, b09, b10, b11 float64
}

func (m Mat44) minors() minors2 {
	return minors2{
		b00: m[0]*m[5] - m[1]*m[4],
		b01: m[0]*m[6] - m[2]*m[4],
		b02: m[0]*m[7] - m[3]*m[4],
		b03: m[1]*m[6] - m[2]*m[5],
		b04: m[1]*m[7] - m[3]*m[5],
		b05: m[2]*m[7] - m[3]*m[6],
		b06: m[8]*m[13] - m[9]*m[12],
		b07: m[8]*m[14] - m[10]*m[12],
		b08: m[8]*m[15] - m[11]*m[12],
		b09: m[9]*m[14] - m[10]*m[13],
		b10: m[9]*m[15] - m[11]*m[13],
		b11: m[10]*m[15] - m[11]*m[14],
	}
}

func (b minors2) det() float64 {
	return b.b00*b.b11 - b.b01*b.b10 + b.b02*b.b09 + b.b03*b.b08 - b.b04*b.b07 + b.b05*b.b06
}

// Determinant returns det(m) via Laplace expansion over 2×2 minors.
func (m Mat44) Determinant() float64 {
	return m.minors().det()
}

// Inverse returns m⁻¹ via the adjugate, or the zero matrix and ErrSingular
// when |det| < SingularTolerance.
func (m Mat44) Inverse() (Mat44, error) {
	b := m.minors()
	d := b.det()
	if math.Abs(d) < SingularTolerance || math.IsNaN(d) {
		graphmath.Logger().Debug("mat: singular matrix", "dim", 4, "det", d)
		return Mat44{}, matrixErrorf("Mat44.Inverse", ErrSingular)
	}
	inv := 1 / d

	return Mat44{
		(m[5]*b.b11 - m[6]*b.b10 + m[7]*b.b09) * inv,
		(m[2]*b.b10 - m[1]*b.b11 - m[3]*b.b09) * inv,
		(m[13]*b.b05 - m[14]*b.b04 + m[15]*b.b03) * inv,
		(m[10]*b.b04 - m[9]*b.b05 - m[11]*b.b03) * inv,
		(m[6]*b.b08 - m[4]*b.b11 - m[7]*b.b07) * inv,
		(m[0]*b.b11 - m[2]*b.b08 + m[3]*b.b07) * inv,
		(m[14]*b.b02 - m[12]*b.b05 - m[15]*b.b01) * inv,
		(m[8]*b.b05 - m[10]*b.b02 + m[11]*b.b01) * inv,
		(m[4]*b.b10 - m[5]*b.b08 + m[7]*b.b06) * inv,
		(m[1]*b.b08 - m[0]*b.b10 - m[3]*b.b06) * inv,
		(m[12]*b.b04 - m[13]*b.b02 + m[15]*b.b00) * inv,
		(m[9]*b.b02 - m[8]*b.b04 - m[11]*b.b00) * inv,
		(m[5]*b.b07 - m[4]*b.b09 - m[6]*b.b06) * inv,
		(m[0]*b.b09 - m[1]*b.b07 + m[2]*b.b06) * inv,
		(m[13]*b.b01 - m[12]*b.b03 - m[14]*b.b00) * inv,
		(m[8]*b.b03 - m[9]*b.b01 + m[10]*b.b00) * inv,
	}, nil
}

// Equal reports whether the Frobenius distance between m and b is strictly
// less than eps.
func (m Mat44) Equal(b Mat44, eps float64) bool {
	return kFrobeniusDist(m[:], b[:]) < eps
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat44) IsIdentity() bool {
	return kIsIdentity(m[:], 4)
}

// String renders one row per line.
func (m Mat44) String() string {
	return kString(m[:], 4)
}
