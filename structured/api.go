// SPDX-License-Identifier: MIT
// Package structured — public API facades.
//
// Purpose:
//   - One polymorphic constructor (New) for callers that select the layout at runtime.
//   - Closed-form storage sizes per layout without allocating (StorageSize).
//   - Read-only helpers over the Matrix contract (InSupport, Rows).
//
// Determinism & Policy:
//   - Helpers only use Order/At, never the backing slices, so they behave the
//     same for every layout.

package structured

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// New returns a zero n×n matrix of the requested layout.
// Errors: ErrUnknownKind, ErrInvalidDimensions.
// Complexity: O(StorageSize(kind, n)).
func New(kind Kind, n int) (Matrix, error) {
	switch kind {
	case KindDiagonal:
		return NewDiagonal(n)
	case KindTridiagonal:
		return NewTridiagonal(n)
	case KindLowerTriangular:
		return NewLowerTriangular(n)
	case KindUpperTriangular:
		return NewUpperTriangular(n)
	case KindSymmetric:
		return NewSymmetric(n)
	default:
		return nil, structErrorf("New", ErrUnknownKind)
	}
}

// StorageSize returns the backing-store length a layout needs for order n:
//
//	Diagonal            n
//	Tridiagonal         3n - 2
//	Lower/Upper/Sym     n(n+1)/2
//
// Errors: ErrUnknownKind, ErrInvalidDimensions.
func StorageSize(kind Kind, n int) (int, error) {
	if err := validateOrder(n); err != nil {
		return 0, structErrorf("StorageSize", err)
	}
	switch kind {
	case KindDiagonal:
		return n, nil
	case KindTridiagonal:
		return 3*n - 2, nil
	case KindLowerTriangular, KindUpperTriangular, KindSymmetric:
		return triangleLen(n), nil
	default:
		return 0, structErrorf("StorageSize", ErrUnknownKind)
	}
}

// InSupport reports whether (i, j) is a position m's layout can hold a
// non-zero value. Out-of-bounds coordinates and nil m report false.
func InSupport(m Matrix, i, j int) bool {
	if m == nil || checkIndex(m.Order(), i, j) != nil {
		return false
	}
	switch m.Kind() {
	case KindDiagonal:
		return i == j
	case KindTridiagonal:
		d := i - j
		return d >= offsetUpper && d <= offsetLower
	case KindLowerTriangular:
		return i >= j
	case KindUpperTriangular:
		return i <= j
	case KindSymmetric:
		return true
	default:
		return false
	}
}

// Rows materializes the logical n×n view of m, row by row.
// It is a display/export helper for callers that own formatting; the
// result is a fresh copy and does not alias m.
// Complexity: O(n²).
func Rows(m Matrix) ([][]int, error) {
	if m == nil {
		return nil, structErrorf("Rows", ErrNilMatrix)
	}
	n := m.Order()
	out := make([][]int, n)
	var (
		i, j int
		v    int
		err  error
	)
	for i = 0; i < n; i++ {
		out[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, structErrorf("Rows", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
