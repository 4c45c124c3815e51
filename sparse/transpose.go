// SPDX-License-Identifier: MIT

package sparse

// Transpose returns mᵀ as a cols×rows matrix.
//
// Implementation:
//   - Stage 1: validate m is non-nil.
//   - Stage 2: for c = 0..cols-1 scan every entry and emit those with Col == c,
//     swapping Row and Col.
//
// The output is grouped by the new row (the old column) without a sort pass;
// within one group entries keep their input order, so a row-major input
// yields a row-major output. NNZ and values are unchanged.
// Complexity: O(cols·nnz) time, O(nnz) space.
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, sparseErrorf(opTranspose, ErrNilMatrix)
	}

	out := make([]Triplet, 0, len(m.entries))
	var c int
	for c = 0; c < m.cols; c++ {
		for _, e := range m.entries {
			if e.Col == c {
				out = append(out, Triplet{Row: e.Col, Col: e.Row, Value: e.Value})
			}
		}
	}
	tracer().Debugf("transpose %d×%d: nnz=%d", m.rows, m.cols, len(out))

	return newMatrixUnchecked(m.cols, m.rows, out), nil
}
