/*
Package sparse implements a general integer matrix in triplet (COO)
encoding: an ordered list of (row, col, value) entries, one per non-zero.

Three structural operations work directly on the triplet lists:

	Transpose   column sweep, O(cols·nnz), output ordered by the new row
	Add         two-pointer merge in (row, col) order, O(nnzA+nnzB)
	Multiply    triplet cross-product into an r1×c2 accumulator, O(nnzA·nnzB + r1·c2)

Add needs both operands in strict row-major order. By default an unsorted
operand is rejected with ErrUnsorted; pass WithNormalize to sort (and
coalesce duplicate positions) first. Add never stores a zero sum. Multiply
accepts any input order and always returns row-major entries.

Rejected operations (shape mismatch) are reported on the package trace
"compactmat.sparse" as well as through the returned error.
*/
package sparse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'compactmat.sparse'
func tracer() tracing.Trace {
	return tracing.Select("compactmat.sparse")
}

// skipNotice reports an operation rejected before any work was done.
// Tests replace it to observe the notice.
var skipNotice = func(format string, args ...interface{}) {
	tracer().Infof(format, args...)
}
