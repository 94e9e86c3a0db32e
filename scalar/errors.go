// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrInvalidDigits is returned when a rounding precision falls outside
// [-MaxDigits, MaxDigits]. Beyond that range float64 cannot represent the
// scale factor exactly and the result would be meaningless.
var ErrInvalidDigits = errors.New("scalar: rounding digits out of range")
