// SPDX-License-Identifier: MIT

// Package structured - Tridiagonal storage.
//
// Purpose:
//   - Keep the main diagonal and its two neighbours in three flat slices,
//     3n-2 cells in total.
//
// Storage layout:
//   - lower[i] = A[i+1][i], i in [0, n-2]
//   - main[i]  = A[i][i],   i in [0, n-1]
//   - upper[i] = A[i][i+1], i in [0, n-2]
//
// Complexity quicksheet:
//   - NewTridiagonal: O(n); At/Set: O(1); Clone: O(n).

package structured

// Diagonal offsets (i - j) that a Tridiagonal can represent.
const (
	offsetMain  = 0
	offsetLower = 1
	offsetUpper = -1
)

// Tridiagonal is an n×n matrix with non-zeros only where |i-j| <= 1.
type Tridiagonal struct {
	n     int
	lower []int // sub-diagonal, len n-1
	main  []int // main diagonal, len n
	upper []int // super-diagonal, len n-1
}

var _ Matrix = (*Tridiagonal)(nil)

// NewTridiagonal creates an n×n zero Tridiagonal.
// For n == 1 both off-diagonals are empty.
// Returns ErrInvalidDimensions if n <= 0.
func NewTridiagonal(n int) (*Tridiagonal, error) {
	if err := validateOrder(n); err != nil {
		return nil, structErrorf("NewTridiagonal", err)
	}

	return &Tridiagonal{
		n:     n,
		lower: make([]int, n-1),
		main:  make([]int, n),
		upper: make([]int, n-1),
	}, nil
}

// Order returns n.
func (t *Tridiagonal) Order() int { return t.n }

// Len returns 3n-2.
func (t *Tridiagonal) Len() int { return len(t.lower) + len(t.main) + len(t.upper) }

// Kind returns KindTridiagonal.
func (t *Tridiagonal) Kind() Kind { return KindTridiagonal }

// slot returns the backing slice and offset for (i, j), or ok=false when
// (i, j) is a structural zero. Assumes (i, j) is in bounds.
func (t *Tridiagonal) slot(i, j int) (store []int, off int, ok bool) {
	switch i - j {
	case offsetMain:
		return t.main, i, true
	case offsetLower:
		return t.lower, i - 1, true
	case offsetUpper:
		return t.upper, i, true
	default:
		return nil, 0, false
	}
}

// At returns A[i][j]; 0 whenever |i-j| > 1.
func (t *Tridiagonal) At(i, j int) (int, error) {
	if err := checkIndex(t.n, i, j); err != nil {
		return 0, accessorErrorf(KindTridiagonal, ctxAt, i, j, err)
	}
	store, off, ok := t.slot(i, j)
	if !ok {
		return 0, nil
	}

	return store[off], nil
}

// Set assigns A[i][j] = v. Writes with |i-j| > 1 are ignored.
func (t *Tridiagonal) Set(i, j, v int) error {
	if err := checkIndex(t.n, i, j); err != nil {
		return accessorErrorf(KindTridiagonal, ctxSet, i, j, err)
	}
	if store, off, ok := t.slot(i, j); ok {
		store[off] = v
	}

	return nil
}

// Clone returns a deep copy of all three bands.
func (t *Tridiagonal) Clone() Matrix {
	return &Tridiagonal{
		n:     t.n,
		lower: append([]int(nil), t.lower...),
		main:  append([]int(nil), t.main...),
		upper: append([]int(nil), t.upper...),
	}
}

// String renders the logical n×n view.
func (t *Tridiagonal) String() string { return formatRows(t) }
