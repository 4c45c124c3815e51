// SPDX-License-Identifier: MIT

package sparse

// Operation tags used in error wrappers and trace lines.
const (
	opTranspose = "Transpose"
	opAdd       = "Add"
	opMultiply  = "Multiply"
)

// Add returns a + b.
//
// Implementation:
//   - Stage 1 (Validate): non-nil operands, identical rows×cols.
//   - Stage 2 (Order): both operands must be strictly row-major; otherwise
//     ErrUnsorted, unless WithNormalize() is given, in which case their
//     Sorted() copies are merged instead.
//   - Stage 3 (Merge): two pointers ordered by (row, col). The smaller position is
//     emitted and only its pointer advances; equal positions are summed, emitted
//     only when the sum is non-zero, and both pointers advance. The remainder
//     of the unfinished list is drained.
//
// The result is row-major and contains no zero produced by cancellation.
// Shape mismatch is reported on the package trace as a skipped addition.
// Complexity: O(nnzA + nnzB) (plus O(nnz log nnz) when normalizing).
func Add(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opAdd, ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		skipNotice("addition skipped: %d×%d and %d×%d differ in shape", a.rows, a.cols, b.rows, b.cols)
		return nil, shapeErrorf(opAdd, a, b)
	}

	o := gatherOptions(opts...)
	if o.normalize {
		a, b = a.Sorted(), b.Sorted()
	} else if !a.IsRowMajor() || !b.IsRowMajor() {
		return nil, sparseErrorf(opAdd, ErrUnsorted)
	}

	out := merge(a.entries, b.entries)
	tracer().Debugf("add %d×%d: nnz %d + %d -> %d", a.rows, a.cols, len(a.entries), len(b.entries), len(out))

	return newMatrixUnchecked(a.rows, a.cols, out), nil
}

// merge is the two-pointer sum of two strictly row-major triplet lists.
func merge(x, y []Triplet) []Triplet {
	out := make([]Triplet, 0, len(x)+len(y))
	var i, j int
	for i < len(x) && j < len(y) {
		switch compareRowMajor(x[i], y[j]) {
		case -1:
			out = append(out, x[i])
			i++
		case 1:
			out = append(out, y[j])
			j++
		default:
			if sum := x[i].Value + y[j].Value; sum != 0 {
				out = append(out, Triplet{Row: x[i].Row, Col: x[i].Col, Value: sum})
			}
			i++
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return out
}
