// SPDX-License-Identifier: MIT

package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when a slice has fewer components than the
	// target vector. Input is never zero-padded.
	ErrArity = errors.New("vec: not enough components")

	// ErrZeroLength is returned when an operation needs a direction but the
	// vector has zero length (Normalize).
	ErrZeroLength = errors.New("vec: zero-length vector")
)

// vecErrorf wraps err with the operation tag, preserving the sentinel.
func vecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// arityErrorf reports how many components were required and given.
func arityErrorf(tag string, want, got int) error {
	return fmt.Errorf("%s: want %d, got %d: %w", tag, want, got, ErrArity)
}
