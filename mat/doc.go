// SPDX-License-Identifier: MIT

// Package mat provides Mat22, Mat33 and Mat44: square float64 matrices with
// value semantics, stored row-major so that element (i, j) of an N×N matrix
// lives at flat index N*i + j.
//
// Two application conventions coexist and must not be mixed up:
//
//	Apply(v)      = m · v   (v is a column vector)
//	ApplyLeft(v)  = v · m   (v is a row vector)
//
// The transform constructors (Translate33, Rotate33, Translate44,
// Rotate44, ...) are built for row vectors: translation lives in the last
// row. Compose them left to right with Multiply and apply with ApplyLeft:
//
//	m := mat.Rotate33(theta).Multiply(mat.Translate33(tx, ty)) // rotate, then translate
//	p := m.ApplyLeft(vec.New3(x, y, 1))
//
// Transposed variants (MultiplyTranspose, ApplyTranspose,
// ApplyLeftTranspose) read the operand in column order instead of
// materialising a transpose; the summation order is the same as the
// explicit form, so results are bit-identical.
//
// Only FromSlice constructors (ErrArity), At/Row/Col (ErrOutOfRange),
// Inverse (ErrSingular) and Rotate44 (ErrZeroLength) can fail.
package mat
