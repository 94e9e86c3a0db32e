// SPDX-License-Identifier: MIT

package mat

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "mat: ". Call sites wrap with the operation
// tag (see matrixErrorf); callers match with errors.Is.
var (
	// ErrArity is returned when a slice holds fewer than N*N elements.
	ErrArity = errors.New("mat: not enough elements")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrSingular is returned by Inverse when |det| is below SingularTolerance.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrZeroLength is returned when a rotation axis has zero length.
	ErrZeroLength = errors.New("mat: zero-length axis")
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches the offending coordinates, like "Mat33.At(3,0): ...".
func indexErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

func arityErrorf(tag string, want, got int) error {
	return fmt.Errorf("%s: want %d, got %d: %w", tag, want, got, ErrArity)
}
