// SPDX-License-Identifier: MIT

package sparse

import (
	"golang.org/x/exp/slices"
)

// compareRowMajor orders a before b when a is stored left of b: smaller
// row first, then smaller column. It returns -1, 0 or +1.
// Coordinates are compared directly: the linear key row·cols+col does not
// fit in an int for shapes such as 2³²×2³².
func compareRowMajor(a, b Triplet) int {
	switch {
	case a.Row < b.Row || a.Row == b.Row && a.Col < b.Col:
		return -1
	case a.Row == b.Row && a.Col == b.Col:
		return 0
	default:
		return 1
	}
}

// IsRowMajor reports whether the entries are in strictly ascending
// row-major order, i.e. sorted by (row, col) with no repeated position.
// This is the precondition of Add.
func (m *Matrix) IsRowMajor() bool {
	for k := 1; k < len(m.entries); k++ {
		if compareRowMajor(m.entries[k-1], m.entries[k]) >= 0 {
			return false
		}
	}

	return true
}

// Sorted returns a row-major copy of m. Entries sharing a position are
// coalesced into one by summation, and a coalesced sum of zero is dropped.
// A single zero supplied by the caller is kept as is.
// Complexity: O(nnz log nnz).
func (m *Matrix) Sorted() *Matrix {
	in := slices.Clone(m.entries)
	slices.SortStableFunc(in, compareRowMajor)

	out := in[:0]
	for k := 0; k < len(in); {
		e := in[k]
		next := k + 1
		for next < len(in) && in[next].Row == e.Row && in[next].Col == e.Col {
			e.Value += in[next].Value
			next++
		}
		if next-k == 1 || e.Value != 0 {
			out = append(out, e)
		}
		k = next
	}

	return newMatrixUnchecked(m.rows, m.cols, out)
}
