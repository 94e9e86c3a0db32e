// SPDX-License-Identifier: MIT

package vec

import (
	"strconv"
	"strings"
)

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// formatComponents renders xs as "[x, y, ...]" with the shortest exact
// representation of each component.
func formatComponents(xs []float64) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
