// SPDX-License-Identifier: MIT

package vec

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
)

// Vec4 is a 4-component vector (x, y, z, w), typically a homogeneous point
// (w=1) or direction (w=0).
type Vec4 [4]float64

// New4 returns (x, y, z, w).
func New4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Zero4 returns (0, 0, 0, 0).
func Zero4() Vec4 {
	return Vec4{}
}

// Vec4FromSlice returns the first four elements of s. Fewer than four
// yield ErrArity.
func Vec4FromSlice(s []float64) (Vec4, error) {
	if len(s) < 4 {
		return Vec4{}, arityErrorf("Vec4FromSlice", 4, len(s))
	}

	return Vec4{s[0], s[1], s[2], s[3]}, nil
}

// X returns the first component.
func (v Vec4) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec4) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec4) Z() float64 { return v[2] }

// W returns the fourth component.
func (v Vec4) W() float64 { return v[3] }

// Add returns v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns v − u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Neg returns −v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// Scale returns v·k.
func (v Vec4) Scale(k float64) Vec4 {
	return Vec4{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

// ScaleVec returns the component-wise product of v and s.
func (v Vec4) ScaleVec(s Vec4) Vec4 {
	return Vec4{v[0] * s[0], v[1] * s[1], v[2] * s[2], v[3] * s[3]}
}

// Dot returns Σ vᵢ·uᵢ.
func (v Vec4) Dot(u Vec4) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] + v[3]*u[3]
}

// Length returns the Euclidean norm over all four components, computed
// without intermediate overflow or underflow.
func (v Vec4) Length() float64 {
	return norm(v[:])
}

// LengthSquared returns Σ vᵢ².
func (v Vec4) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// LengthManhattan returns the signed component sum. See LengthL1.
func (v Vec4) LengthManhattan() float64 {
	return v[0] + v[1] + v[2] + v[3]
}

// LengthL1 returns Σ |vᵢ|.
func (v Vec4) LengthL1() float64 {
	return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2]) + math.Abs(v[3])
}

// Distance returns |v − u|.
func (v Vec4) Distance(u Vec4) float64 {
	return v.Sub(u).Length()
}

// Normalize returns v/|v|, or the zero vector and ErrZeroLength.
// All four components take part, including w.
func (v Vec4) Normalize() (Vec4, error) {
	var out Vec4
	if !normalizeInto(out[:], v[:]) {
		graphmath.Logger().Debug("vec: normalize of zero-length vector", "dim", 4)
		return Vec4{}, vecErrorf("Vec4.Normalize", ErrZeroLength)
	}

	return out, nil
}

// NormalizeOrZero is Normalize without the error.
func (v Vec4) NormalizeOrZero() Vec4 {
	n, _ := v.Normalize()
	return n
}

// Lerp returns (1−t)·v + t·u.
func (v Vec4) Lerp(u Vec4, t float64) Vec4 {
	s := 1 - t
	return Vec4{
		s*v[0] + t*u[0],
		s*v[1] + t*u[1],
		s*v[2] + t*u[2],
		s*v[3] + t*u[3],
	}
}

// Compare reports whether |v − u| < eps.
func (v Vec4) Compare(u Vec4, eps float64) bool {
	return v.Distance(u) < eps
}

// Round rounds every component to digits fractional digits.
func (v Vec4) Round(digits int) (Vec4, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Vec4{}, vecErrorf("Vec4.Round", err)
	}
	var out Vec4
	for i, x := range v {
		out[i] = scalar.MustRound(x, digits)
	}

	return out, nil
}

// IsZero reports whether all components are exactly zero.
func (v Vec4) IsZero() bool {
	return v == Vec4{}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide returns (x/w, y/w, z/w). A zero w yields ErrZeroLength.
func (v Vec4) PerspectiveDivide() (Vec3, error) {
	if v[3] == 0 {
		return Vec3{}, vecErrorf("Vec4.PerspectiveDivide", ErrZeroLength)
	}
	w := v[3]

	return Vec3{v[0] / w, v[1] / w, v[2] / w}, nil
}

// Slice returns the components as a new slice.
func (v Vec4) Slice() []float64 {
	return []float64{v[0], v[1], v[2], v[3]}
}

// String renders v as "[x, y, ...]".
func (v Vec4) String() string {
	return formatComponents(v[:])
}
