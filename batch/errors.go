// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

// ErrNilContext is returned when a nil context.Context is passed.
var ErrNilContext = errors.New("batch: nil context")

func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elemErrorf attaches the failing element index.
func elemErrorf(index int, err error) error {
	return fmt.Errorf("element %d: %w", index, err)
}
