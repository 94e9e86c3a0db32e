// SPDX-License-Identifier: MIT

package vec

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to the golang.org/x/image/math array types and gonum's
// spatial vectors. The f64 types share our layout, so those conversions
// are free. The f32 conversions round each component to float32.

// F64 returns v as the equivalent golang.org/x/image/math/f64 array.
func (v Vec2) F64() f64.Vec2 { return f64.Vec2(v) }

// F64 returns v as the equivalent golang.org/x/image/math/f64 array.
func (v Vec3) F64() f64.Vec3 { return f64.Vec3(v) }

// F64 returns v as the equivalent golang.org/x/image/math/f64 array.
func (v Vec4) F64() f64.Vec4 { return f64.Vec4(v) }

// Vec2FromF64 converts an f64.Vec2.
func Vec2FromF64(v f64.Vec2) Vec2 { return Vec2(v) }

// Vec3FromF64 converts an f64.Vec3.
func Vec3FromF64(v f64.Vec3) Vec3 { return Vec3(v) }

// Vec4FromF64 converts an f64.Vec4.
func Vec4FromF64(v f64.Vec4) Vec4 { return Vec4(v) }

// F32 narrows v to float32 components.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2{float32(v[0]), float32(v[1])} }

// F32 narrows v to float32 components.
func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// F32 narrows v to float32 components.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Vec2FromF32 widens an f32.Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{float64(v[0]), float64(v[1])} }

// Vec3FromF32 widens an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vec4FromF32 widens an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// R2 returns v as a gonum r2.Vec.
func (v Vec2) R2() r2.Vec { return r2.Vec{X: v[0], Y: v[1]} }

// Vec2FromR2 converts a gonum r2.Vec.
func Vec2FromR2(p r2.Vec) Vec2 { return Vec2{p.X, p.Y} }

// R3 returns v as a gonum r3.Vec.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// Vec3FromR3 converts a gonum r3.Vec.
func Vec3FromR3(p r3.Vec) Vec3 { return Vec3{p.X, p.Y, p.Z} }
