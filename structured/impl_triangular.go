// SPDX-License-Identifier: MIT

// Package structured - packed triangular storage (diagonal included).
//
// Purpose:
//   - Store one triangle of an n×n matrix row by row in n(n+1)/2 cells.
//
// Index formulas (0-based):
//   - Lower, i >= j: idx = i(i+1)/2 + j
//   - Upper, i <= j: idx = i*n - i(i-1)/2 + (j - i)
//     where i*n - i(i-1)/2 counts the cells of rows 0..i-1 (row r holds n-r cells).
//
// Both formulas are bijections from their triangle onto [0, n(n+1)/2).
//
// Complexity quicksheet:
//   - NewLowerTriangular/NewUpperTriangular: O(n²/2); At/Set: O(1).

package structured

// LowerTriangular is an n×n matrix with non-zeros only where i >= j.
type LowerTriangular struct {
	n    int
	data []int // len == n(n+1)/2, row-major over the lower triangle
}

var _ Matrix = (*LowerTriangular)(nil)

// NewLowerTriangular creates an n×n zero LowerTriangular.
// Returns ErrInvalidDimensions if n <= 0.
func NewLowerTriangular(n int) (*LowerTriangular, error) {
	if err := validateOrder(n); err != nil {
		return nil, structErrorf("NewLowerTriangular", err)
	}

	return &LowerTriangular{n: n, data: make([]int, triangleLen(n))}, nil
}

// Order returns n.
func (l *LowerTriangular) Order() int { return l.n }

// Len returns n(n+1)/2.
func (l *LowerTriangular) Len() int { return len(l.data) }

// Kind returns KindLowerTriangular.
func (l *LowerTriangular) Kind() Kind { return KindLowerTriangular }

// At returns A[i][j]; 0 above the diagonal.
func (l *LowerTriangular) At(i, j int) (int, error) {
	if err := checkIndex(l.n, i, j); err != nil {
		return 0, accessorErrorf(KindLowerTriangular, ctxAt, i, j, err)
	}
	if i < j {
		return 0, nil
	}

	return l.data[lowerIndex(i, j)], nil
}

// Set assigns A[i][j] = v for i >= j; writes above the diagonal are ignored.
func (l *LowerTriangular) Set(i, j, v int) error {
	if err := checkIndex(l.n, i, j); err != nil {
		return accessorErrorf(KindLowerTriangular, ctxSet, i, j, err)
	}
	if i >= j {
		l.data[lowerIndex(i, j)] = v
	}

	return nil
}

// Clone returns a deep copy.
func (l *LowerTriangular) Clone() Matrix {
	return &LowerTriangular{n: l.n, data: append([]int(nil), l.data...)}
}

// String renders the logical n×n view.
func (l *LowerTriangular) String() string { return formatRows(l) }

// UpperTriangular is an n×n matrix with non-zeros only where i <= j.
type UpperTriangular struct {
	n    int
	data []int // len == n(n+1)/2, row-major over the upper triangle
}

var _ Matrix = (*UpperTriangular)(nil)

// NewUpperTriangular creates an n×n zero UpperTriangular.
// Returns ErrInvalidDimensions if n <= 0.
func NewUpperTriangular(n int) (*UpperTriangular, error) {
	if err := validateOrder(n); err != nil {
		return nil, structErrorf("NewUpperTriangular", err)
	}

	return &UpperTriangular{n: n, data: make([]int, triangleLen(n))}, nil
}

// Order returns n.
func (u *UpperTriangular) Order() int { return u.n }

// Len returns n(n+1)/2.
func (u *UpperTriangular) Len() int { return len(u.data) }

// Kind returns KindUpperTriangular.
func (u *UpperTriangular) Kind() Kind { return KindUpperTriangular }

// prefixCountBeforeRow returns the number of stored cells in rows 0..i-1.
func (u *UpperTriangular) prefixCountBeforeRow(i int) int {
	return i*u.n - i*(i-1)/2
}

// index assumes i <= j.
func (u *UpperTriangular) index(i, j int) int {
	return u.prefixCountBeforeRow(i) + (j - i)
}

// At returns A[i][j]; 0 below the diagonal.
func (u *UpperTriangular) At(i, j int) (int, error) {
	if err := checkIndex(u.n, i, j); err != nil {
		return 0, accessorErrorf(KindUpperTriangular, ctxAt, i, j, err)
	}
	if i > j {
		return 0, nil
	}

	return u.data[u.index(i, j)], nil
}

// Set assigns A[i][j] = v for i <= j; writes below the diagonal are ignored.
func (u *UpperTriangular) Set(i, j, v int) error {
	if err := checkIndex(u.n, i, j); err != nil {
		return accessorErrorf(KindUpperTriangular, ctxSet, i, j, err)
	}
	if i <= j {
		u.data[u.index(i, j)] = v
	}

	return nil
}

// Clone returns a deep copy.
func (u *UpperTriangular) Clone() Matrix {
	return &UpperTriangular{n: u.n, data: append([]int(nil), u.data...)}
}

// String renders the logical n×n view.
func (u *UpperTriangular) String() string { return formatRows(u) }
