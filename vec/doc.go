// SPDX-License-Identifier: MIT

// Package vec provides Vec2, Vec3 and Vec4: fixed-length float64 vectors
// with value semantics.
//
// Every method returns a new vector; receivers are never modified. The
// array representation gives compile-time arity, so only the slice
// constructors (Vec3FromSlice, ...) can fail, and they fail with ErrArity
// when the input is too short. Longer input is truncated to N components.
//
// Zero-length handling:
//   - Normalize returns the zero vector and ErrZeroLength.
//   - NormalizeOrZero returns the zero vector silently.
//
// Neither ever produces NaN from a zero-length input.
//
// LengthManhattan is the literal sum of the signed components. It equals
// the L1 norm only when every component is non-negative; LengthL1 sums
// absolute values.
package vec
