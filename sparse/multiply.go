// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// MaxAccumulatorCells bounds r1·c2 for Multiply. Larger results fail with
// ErrTooLarge instead of attempting the allocation. On 32-bit platforms the
// effective bound is math.MaxInt.
const MaxAccumulatorCells = 1 << 40

// accumulatorLimit is MaxAccumulatorCells clamped to the platform int range.
const accumulatorLimit int64 = min(MaxAccumulatorCells, math.MaxInt)

// Multiply returns a × b.
//
// Implementation:
//   - Stage 1 (Validate): non-nil operands, a.Cols == b.Rows, and
//     r1·c2 <= MaxAccumulatorCells (ErrTooLarge otherwise).
//   - Stage 2 (Prepare): allocate a flat r1×c2 accumulator for this call only.
//   - Stage 3 (Accumulate): for every pair (x ∈ a, y ∈ b) with x.Col == y.Row,
//     acc[x.Row][y.Col] += x.Value·y.Value. With WithWorkers(k) the result
//     rows are split into k bands and each goroutine handles the x in its band,
//     so no two goroutines touch the same cell.
//   - Stage 4 (Extract): scan acc row-major and emit every non-zero cell.
//
// Input order does not matter; the output is always row-major.
// Shape mismatch is reported on the package trace as a skipped multiplication.
// Complexity: O(nnzA·nnzB + r1·c2) time, O(r1·c2) scratch.
func Multiply(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opMultiply, ErrNilMatrix)
	}
	if a.cols != b.rows {
		skipNotice("multiplication skipped: %d×%d times %d×%d, inner dimensions differ", a.rows, a.cols, b.rows, b.cols)
		return nil, shapeErrorf(opMultiply, a, b)
	}
	r, c := a.rows, b.cols
	if int64(r) > accumulatorLimit/int64(c) {
		skipNotice("multiplication skipped: %d×%d result exceeds the accumulator limit", r, c)
		return nil, fmt.Errorf("%s: %d×%d result: %w", opMultiply, r, c, ErrTooLarge)
	}

	o := gatherOptions(opts...)
	acc := make([]int, r*c)

	workers := min(o.workers, r)
	if workers <= 1 {
		accumulate(acc, a.entries, b.entries, c, 0, r)
	} else {
		band := (r + workers - 1) / workers
		var g errgroup.Group
		for lo := 0; lo < r; lo += band {
			lo, hi := lo, min(lo+band, r)
			g.Go(func() error {
				accumulate(acc, a.entries, b.entries, c, lo, hi)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, sparseErrorf(opMultiply, err)
		}
	}

	out := extract(acc, r, c)
	tracer().Debugf("multiply %d×%d · %d×%d: nnz %d, %d -> %d (workers=%d)",
		a.rows, a.cols, b.rows, b.cols, len(a.entries), len(b.entries), len(out), workers)

	return newMatrixUnchecked(r, c, out), nil
}

// accumulate adds every partial product whose result row lies in [lo, hi)
// into acc, a row-major buffer with c columns.
func accumulate(acc []int, x, y []Triplet, c, lo, hi int) {
	for _, p := range x {
		if p.Row < lo || p.Row >= hi {
			continue
		}
		for _, q := range y {
			if p.Col == q.Row {
				acc[p.Row*c+q.Col] += p.Value * q.Value
			}
		}
	}
}

// extract converts the accumulator back to triplets, skipping zero cells.
func extract(acc []int, r, c int) []Triplet {
	out := make([]Triplet, 0)
	var i, j, v int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v = acc[i*c+j]; v != 0 {
				out = append(out, Triplet{Row: i, Col: j, Value: v})
			}
		}
	}

	return out
}
