// SPDX-License-Identifier: MIT

package structured

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// formatRows renders m as one "[a, b, c]" line per row.
// Indices are always in range, so At errors cannot occur here.
func formatRows(m Matrix) string {
	var b strings.Builder
	n := m.Order()
	var i, j, v int
	for i = 0; i < n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			b.WriteString(strconv.Itoa(v))
			if j+1 < n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
