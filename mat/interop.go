// SPDX-License-Identifier: MIT

package mat

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// golang.org/x/image/math stores Mat3/Mat4 row-major exactly like this
// package, so the f64 conversions are plain type conversions.

// F64 returns m as the equivalent golang.org/x/image/math/f64 array.
func (m Mat33) F64() f64.Mat3 { return f64.Mat3(m) }

// Mat33FromF64 converts an f64.Mat3.
func Mat33FromF64(m f64.Mat3) Mat33 { return Mat33(m) }

// F64 returns m as the equivalent golang.org/x/image/math/f64 array.
func (m Mat44) F64() f64.Mat4 { return f64.Mat4(m) }

// Mat44FromF64 converts an f64.Mat4.
func Mat44FromF64(m f64.Mat4) Mat44 { return Mat44(m) }

// F32 narrows every element to float32.
func (m Mat33) F32() f32.Mat3 {
	var out f32.Mat3
	for i, x := range m {
		out[i] = float32(x)
	}

	return out
}

// Mat33FromF32 widens an f32.Mat3.
func Mat33FromF32(m f32.Mat3) Mat33 {
	var out Mat33
	for i, x := range m {
		out[i] = float64(x)
	}

	return out
}

// F32 narrows every element to float32.
func (m Mat44) F32() f32.Mat4 {
	var out f32.Mat4
	for i, x := range m {
		out[i] = float32(x)
	}

	return out
}

// Mat44FromF32 widens an f32.Mat4.
func Mat44FromF32(m f32.Mat4) Mat44 {
	var out Mat44
	for i, x := range m {
		out[i] = float64(x)
	}

	return out
}

// Aff3 converts a row-vector affine Mat33 into x/image's column-vector
// f64.Aff3, which maps (x, y) to (a*x + b*y + c, d*x + e*y + f). The result
// is the first two rows of mᵗ. The last column of m is dropped, so only
// affine matrices (last column (0, 0, 1)) convert losslessly.
func (m Mat33) Aff3() f64.Aff3 {
	return f64.Aff3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
	}
}

// Mat33FromAff3 is the inverse of Mat33.Aff3.
func Mat33FromAff3(a f64.Aff3) Mat33 {
	return Mat33{
		a[0], a[3], 0,
		a[1], a[4], 0,
		a[2], a[5], 1,
	}
}
