// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Triplet is one stored entry (Row, Col, Value) of a sparse matrix.
// Keeping Value non-zero is the caller's responsibility on input; Add and
// Multiply never produce a zero entry.
type Triplet struct {
	Row, Col int
	Value    int
}

// Matrix is a rows×cols integer matrix stored as an ordered triplet list.
// Construct with
//
//	M, err := NewMatrix(3, 4,
//	    Triplet{0, 1, 5},
//	    Triplet{2, 3, -1},
//	)
//
// Positions without a triplet read as 0. The entry order is whatever the
// caller supplied; use IsRowMajor / Sorted to check or establish row-major order.
type Matrix struct {
	rows, cols int
	entries    []Triplet
}

// NewMatrix creates a rows×cols matrix holding a copy of entries.
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0; ErrOutOfRange if
// any entry lies outside the shape.
func NewMatrix(rows, cols int, entries ...Triplet) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewMatrix", ErrInvalidDimensions)
	}
	for k, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("NewMatrix: entry %d at (%d,%d): %w", k, e.Row, e.Col, ErrOutOfRange)
		}
	}

	return &Matrix{rows: rows, cols: cols, entries: slices.Clone(entries)}, nil
}

// newMatrixUnchecked wraps already validated entries without copying.
func newMatrixUnchecked(rows, cols int, entries []Triplet) *Matrix {
	return &Matrix{rows: rows, cols: cols, entries: entries}
}

// Identity returns the n×n identity as n diagonal triplets.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, sparseErrorf("Identity", ErrInvalidDimensions)
	}
	entries := make([]Triplet, n)
	for i := range entries {
		entries[i] = Triplet{Row: i, Col: i, Value: 1}
	}

	return newMatrixUnchecked(n, n, entries), nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored triplets.
func (m *Matrix) NNZ() int { return len(m.entries) }

// Entries returns a copy of the stored triplets in storage order.
func (m *Matrix) Entries() []Triplet { return slices.Clone(m.entries) }

// At returns the value at (i, j): the first stored triplet at that
// position, or 0 if none. Complexity: O(nnz).
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	for _, e := range m.entries {
		if e.Row == i && e.Col == j {
			return e.Value, nil
		}
	}

	return 0, nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return newMatrixUnchecked(m.rows, m.cols, slices.Clone(m.entries))
}

// Equal reports whether m and o have the same shape and the same triplet
// sequence (order matters; compare Sorted() copies for set equality).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.entries, o.entries)
}

// String renders the shape followed by a Row/Col/Value table.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d×%d, %d non-zero\n", m.rows, m.cols, len(m.entries))
	b.WriteString("Row Col Value\n")
	for _, e := range m.entries {
		fmt.Fprintf(&b, "%-3d %-3d %d\n", e.Row, e.Col, e.Value)
	}

	return b.String()
}
