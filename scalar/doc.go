// SPDX-License-Identifier: MIT

// Package scalar holds the numeric conventions shared by the vec and mat
// packages: the rounding mode used by every Round method and the default
// tolerance for approximate comparisons.
//
// Rounding is round-half-away-from-zero at a decimal position:
//
//	Round(2.5, 0)   == 3
//	Round(-2.5, 0)  == -3
//	Round(1.2345, 2) == 1.23
//	Round(1234, -2)  == 1200
//
// The mode is fixed and does not depend on the host runtime.
package scalar
