// SPDX-License-Identifier: MIT

package vec

import (
	"math"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/scalar"
)

// Vec3 is a 3-component vector (x, y, z).
type Vec3 [3]float64

// New3 returns (x, y, z).
func New3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns (0, 0, 0).
func Zero3() Vec3 {
	return Vec3{}
}

// Vec3FromSlice returns the first three elements of s as a Vec3.
// Extra elements are ignored; fewer than three yield ErrArity.
func Vec3FromSlice(s []float64) (Vec3, error) {
	if len(s) < 3 {
		return Vec3{}, arityErrorf("Vec3FromSlice", 3, len(s))
	}

	return Vec3{s[0], s[1], s[2]}, nil
}

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Neg returns −v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Scale returns every component multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// ScaleVec returns the component-wise product of v and s (non-uniform scale).
func (v Vec3) ScaleVec(s Vec3) Vec3 {
	return Vec3{v[0] * s[0], v[1] * s[1], v[2] * s[2]}
}

// Dot returns Σ vᵢ·wᵢ.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the right-handed cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns the Euclidean norm. Finite components never overflow or
// underflow the intermediate sum, so Length is non-zero for any non-zero v.
func (v Vec3) Length() float64 {
	return norm(v[:])
}

// LengthSquared returns Σ vᵢ². Cheaper than Length for comparisons.
func (v Vec3) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// LengthManhattan returns the signed sum x + y + z.
//
// Notes:
//   - This is the L1 norm only when no component is negative. Callers that
//     need the true norm should use LengthL1.
func (v Vec3) LengthManhattan() float64 {
	return v[0] + v[1] + v[2]
}

// LengthL1 returns |x| + |y| + |z|.
func (v Vec3) LengthL1() float64 {
	return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2])
}

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns v divided component-wise by Length(v).
//
// Behavior highlights:
//   - Zero length: returns the zero vector and ErrZeroLength; never NaN.
//   - Very large or very small finite components still give a unit vector:
//     v is divided by max |vᵢ| before its length is taken.
//   - Infinite components are not special-cased and follow IEEE-754.
//
// Complexity: O(1).
func (v Vec3) Normalize() (Vec3, error) {
	var out Vec3
	if !normalizeInto(out[:], v[:]) {
		graphmath.Logger().Debug("vec: normalize of zero-length vector", "dim", 3)
		return Vec3{}, vecErrorf("Vec3.Normalize", ErrZeroLength)
	}

	return out, nil
}

// NormalizeOrZero is Normalize with the zero vector as the silent result for
// zero-length input.
func (v Vec3) NormalizeOrZero() Vec3 {
	n, _ := v.Normalize()
	return n
}

// Lerp returns (1−t)·v + t·w. t outside [0, 1] extrapolates.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	s := 1 - t
	return Vec3{
		s*v[0] + t*w[0],
		s*v[1] + t*w[1],
		s*v[2] + t*w[2],
	}
}

// Compare reports whether the Euclidean distance between v and w is
// strictly less than eps.
func (v Vec3) Compare(w Vec3, eps float64) bool {
	return v.Distance(w) < eps
}

// Round rounds every component to digits fractional digits
// (round-half-away-from-zero, see package scalar).
func (v Vec3) Round(digits int) (Vec3, error) {
	if err := scalar.ValidateDigits(digits); err != nil {
		return Vec3{}, vecErrorf("Vec3.Round", err)
	}

	return Vec3{
		scalar.MustRound(v[0], digits),
		scalar.MustRound(v[1], digits),
		scalar.MustRound(v[2], digits),
	}, nil
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// Extend appends w as the fourth component (homogeneous coordinates).
func (v Vec3) Extend(w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Slice returns the components as a new slice.
func (v Vec3) Slice() []float64 {
	return []float64{v[0], v[1], v[2]}
}

// String renders v as "[x, y, z]".
func (v Vec3) String() string {
	return formatComponents(v[:])
}
