// SPDX-License-Identifier: MIT

package vec

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
)

// Vec2 is a 2-component vector (x, y).
type Vec2 [2]float64

// New2 returns (x, y).
func New2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns (0, 0).
func Zero2() Vec2 {
	return Vec2{}
}

// Vec2FromSlice returns the first two elements of s. Fewer than two yield
// ErrArity.
func Vec2FromSlice(s []float64) (Vec2, error) {
	if len(s) < 2 {
		return Vec2{}, arityErrorf("Vec2FromSlice", 2, len(s))
	}

	return Vec2{s[0], s[1]}, nil
}

// X returns the first component.
func (v Vec2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v[1] }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Neg returns −v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

// Scale returns v·k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v[0] * k, v[1] * k}
}

// ScaleVec returns the component-wise product of v and s.
func (v Vec2) ScaleVec(s Vec2) Vec2 {
	return Vec2{v[0] * s[0], v[1] * s[1]}
}

// Dot returns v·w.
func (v Vec2) Dot(w Vec2) float64 {
	return v[0]*w[0] + v[1]*w[1]
}

// Cross returns the scalar perp-dot product x₁y₂ − y₁x₂, which is the z
// component of the 3D cross product of (v, 0) and (w, 0).
func (v Vec2) Cross(w Vec2) float64 {
	return v[0]*w[1] - v[1]*w[0]
}

// Perp returns v rotated 90° counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v[1], v[0]}
}

// Length returns the Euclidean norm via math.Hypot.
func (v Vec2) Length() float64 {
	return math.Hypot(v[0], v[1])
}

// LengthSquared returns x² + y².
func (v Vec2) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

// LengthManhattan returns the signed sum x + y. See LengthL1 for the norm.
func (v Vec2) LengthManhattan() float64 {
	return v[0] + v[1]
}

// LengthL1 returns |x| + |y|.
func (v Vec2) LengthL1() float64 {
	return math.Abs(v[0]) + math.Abs(v[1])
}

// Distance returns |v − w|.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Normalize returns v/|v|, or the zero vector and ErrZeroLength.
func (v Vec2) Normalize() (Vec2, error) {
	var out Vec2
	if !normalizeInto(out[:], v[:]) {
		graphmath.Logger().Debug("vec: normalize of zero-length vector", "dim", 2)
		return Vec2{}, vecErrorf("Vec2.Normalize", ErrZeroLength)
	}

	return out, nil
}

// NormalizeOrZero is Normalize without the error.
func (v Vec2) NormalizeOrZero() Vec2 {
	n, _ := v.Normalize()
	return n
}

// Lerp returns (1−t)·v + t·w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	s := 1 - t
	return Vec2{s*v[0] + t*w[0], s*v[1] + t*w[1]}
}

// Compare reports whether |v − w| < eps.
func (v Vec2) Compare(w Vec2, eps float64) bool {
	return v.Distance(w) < eps
}

// Round rounds every component to digits fractional digits.
func (v Vec2) Round(digits int) (Vec2, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Vec2{}, vecErrorf("Vec2.Round", err)
	}

	return Vec2{scalar.MustRound(v[0], digits), scalar.MustRound(v[1], digits)}, nil
}

// IsZero reports whether all components are exactly zero.
func (v Vec2) IsZero() bool {
	return v[0] == 0 && v[1] == 0
}

// Extend appends z as the third component.
func (v Vec2) Extend(z float64) Vec3 {
	return Vec3{v[0], v[1], z}
}

// Slice returns the components as a new slice.
func (v Vec2) Slice() []float64 {
	return []float64{v[0], v[1]}
}

// String renders v as "[x, y, ...]".
func (v Vec2) String() string {
	return formatComponents(v[:])
}
