// Package graphmath is a small, allocation-free vector and matrix kernel for
// graphics, simulation and game code.
//
// What is inside?
//
//	A pure-Go library of immutable fixed-size value types:
//		• vec   : Vec2, Vec3, Vec4: arithmetic, dot/cross, norms, lerp, compare
//		• mat   : Mat22, Mat33, Mat44: products, transposed products,
//		           row/column/diagonal access, transforms, inverse
//		• scalar: the shared rounding mode and tolerance
//		• batch : concurrent bulk transforms of vector slices
//
// Conventions every package follows:
//
//   - Matrices are row-major: element (i, j) of an N×N matrix is at flat
//     index N*i + j.
//   - Apply treats a vector as a column (m·v). ApplyLeft treats it as a row
//     (v·m). The transform constructors (Translate, Rotate) are built for
//     row vectors, so compose them with Multiply and apply with ApplyLeft.
//   - Every operation returns a new value; nothing is mutated in place, so
//     all values are safe to share between goroutines.
//   - Invalid input is reported with sentinel errors matched by errors.Is.
//
// Quick example:
//
//	r := mat.Rotate33(math.Pi / 2)
//	p := r.ApplyLeft(vec.New3(1, 0, 0)) // ≈ (0, 1, 0)
//
// Logging is silent by default; see SetLogger.
package graphmath
