// SPDX-License-Identifier: MIT

// Package structured - Diagonal storage.
//
// Purpose:
//   - Keep only A[i][i]; every off-diagonal position is a structural zero.
//
// Complexity quicksheet:
//   - NewDiagonal: O(n) zero-init; At/Set: O(1); Clone: O(n).

package structured

// Diagonal is an n×n matrix whose only representable entries lie on the
// main diagonal. diag[i] holds A[i][i].
type Diagonal struct {
	n    int   // order
	diag []int // len == n
}

var _ Matrix = (*Diagonal)(nil)

// NewDiagonal creates an n×n zero Diagonal.
// Returns ErrInvalidDimensions if n <= 0.
func NewDiagonal(n int) (*Diagonal, error) {
	if err := validateOrder(n); err != nil {
		return nil, structErrorf("NewDiagonal", err)
	}

	return &Diagonal{n: n, diag: make([]int, n)}, nil
}

// Order returns n. Complexity: O(1).
func (d *Diagonal) Order() int { return d.n }

// Len returns the backing length, n. Complexity: O(1).
func (d *Diagonal) Len() int { return len(d.diag) }

// Kind returns KindDiagonal.
func (d *Diagonal) Kind() Kind { return KindDiagonal }

// At returns A[i][i] when i == j and 0 otherwise.
func (d *Diagonal) At(i, j int) (int, error) {
	if err := checkIndex(d.n, i, j); err != nil {
		return 0, accessorErrorf(KindDiagonal, ctxAt, i, j, err)
	}
	if i != j {
		return 0, nil
	}

	return d.diag[i], nil
}

// Set stores v at (i, i). Off-diagonal writes are accepted and dropped.
func (d *Diagonal) Set(i, j, v int) error {
	if err := checkIndex(d.n, i, j); err != nil {
		return accessorErrorf(KindDiagonal, ctxSet, i, j, err)
	}
	if i == j {
		d.diag[i] = v
	}

	return nil
}

// Clone returns a deep copy.
func (d *Diagonal) Clone() Matrix {
	cp := make([]int, len(d.diag))
	copy(cp, d.diag)

	return &Diagonal{n: d.n, diag: cp}
}

// String renders the logical n×n view, one bracketed row per line.
func (d *Diagonal) String() string { return formatRows(d) }
