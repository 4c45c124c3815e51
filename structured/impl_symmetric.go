// SPDX-License-Identifier: MIT

package structured

// Symmetric is an n×n matrix with A[i][j] == A[j][i] for all i, j.
// Only the lower triangle (diagonal included) is stored; every access is
// canonicalized to (max(i,j), min(i,j)), so one write is visible from both
// sides of the diagonal.
type Symmetric struct {
	n    int
	data []int // len == n(n+1)/2, packed like LowerTriangular
}

var _ Matrix = (*Symmetric)(nil)

// NewSymmetric creates an n×n zero Symmetric.
// Returns ErrInvalidDimensions if n <= 0.
func NewSymmetric(n int) (*Symmetric, error) {
	if err := validateOrder(n); err != nil {
		return nil, structErrorf("NewSymmetric", err)
	}

	return &Symmetric{n: n, data: make([]int, triangleLen(n))}, nil
}

// Order returns n.
func (s *Symmetric) Order() int { return s.n }

// Len returns n(n+1)/2.
func (s *Symmetric) Len() int { return len(s.data) }

// Kind returns KindSymmetric.
func (s *Symmetric) Kind() Kind { return KindSymmetric }

// canonical maps (i, j) onto the stored lower-triangle offset.
func canonical(i, j int) int {
	r, c := max(i, j), min(i, j)

	return lowerIndex(r, c)
}

// At returns A[i][j], which always equals A[j][i].
func (s *Symmetric) At(i, j int) (int, error) {
	if err := checkIndex(s.n, i, j); err != nil {
		return 0, accessorErrorf(KindSymmetric, ctxAt, i, j, err)
	}

	return s.data[canonical(i, j)], nil
}

// Set assigns A[i][j] = A[j][i] = v. Every in-bounds position is representable.
func (s *Symmetric) Set(i, j, v int) error {
	if err := checkIndex(s.n, i, j); err != nil {
		return accessorErrorf(KindSymmetric, ctxSet, i, j, err)
	}
	s.data[canonical(i, j)] = v

	return nil
}

// Clone returns a deep copy.
func (s *Symmetric) Clone() Matrix {
	return &Symmetric{n: s.n, data: append([]int(nil), s.data...)}
}

// String renders the logical n×n view.
func (s *Symmetric) String() string { return formatRows(s) }
