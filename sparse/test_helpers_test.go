// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/compactmat/sparse"
)

// traceKey is the trace selector used by the sparse package.
const traceKey = "compactmat.sparse"

// MustMatrix builds a rows×cols matrix from triplets or fails the test.
func MustMatrix(t testing.TB, rows, cols int, entries ...sparse.Triplet) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewMatrix(rows, cols, entries...)
	if err != nil {
		t.Fatalf("NewMatrix(%d,%d): %v", rows, cols, err)
	}

	return m
}

// RandMatrix returns a rows×cols matrix with roughly density·rows·cols
// non-zero entries in [-9, 9], row-major and duplicate-free, by seed.
func RandMatrix(t testing.TB, rows, cols int, density float64, seed int64) *sparse.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var entries []sparse.Triplet
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.Intn(19) - 9
			if v == 0 {
				v = 1
			}
			entries = append(entries, sparse.Triplet{Row: i, Col: j, Value: v})
		}
	}

	return MustMatrix(t, rows, cols, entries...)
}

// Shuffled returns a copy of m with its entries in a seeded random order.
func Shuffled(t testing.TB, m *sparse.Matrix, seed int64) *sparse.Matrix {
	t.Helper()
	e := m.Entries()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(e), func(i, j int) { e[i], e[j] = e[j], e[i] })

	return MustMatrix(t, m.Rows(), m.Cols(), e...)
}

// Negated returns -m with the same entry order.
func Negated(t testing.TB, m *sparse.Matrix) *sparse.Matrix {
	t.Helper()
	e := m.Entries()
	for k := range e {
		e[k].Value = -e[k].Value
	}

	return MustMatrix(t, m.Rows(), m.Cols(), e...)
}

// denseOf expands m into a rows×cols grid, summing duplicate positions.
func denseOf(m *sparse.Matrix) [][]int {
	out := make([][]int, m.Rows())
	for i := range out {
		out[i] = make([]int, m.Cols())
	}
	for _, e := range m.Entries() {
		out[e.Row][e.Col] += e.Value
	}

	return out
}

// denseMul is the reference product of two grids.
func denseMul(x, y [][]int) [][]int {
	r, n, c := len(x), len(y), len(y[0])
	out := make([][]int, r)
	for i := 0; i < r; i++ {
		out[i] = make([]int, c)
		for k := 0; k < n; k++ {
			for j := 0; j < c; j++ {
				out[i][j] += x[i][k] * y[k][j]
			}
		}
	}

	return out
}
