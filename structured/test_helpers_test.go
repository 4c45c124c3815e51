// SPDX-License-Identifier: MIT
// Package structured_test contains test helpers.
//
// Purpose:
//   • Small, deterministic fixtures shared by the layout tests.

package structured_test

import (
	"testing"

	"github.com/katalvlaran/compactmat/structured"
)

// allKinds lists every layout in a fixed order for table-driven tests.
var allKinds = []structured.Kind{
	structured.KindDiagonal,
	structured.KindTridiagonal,
	structured.KindLowerTriangular,
	structured.KindUpperTriangular,
	structured.KindSymmetric,
}

// MustNew allocates an n×n matrix of the given kind or fails the test.
func MustNew(t testing.TB, kind structured.Kind, n int) structured.Matrix {
	t.Helper()
	m, err := structured.New(kind, n)
	if err != nil {
		t.Fatalf("New(%v,%d): %v", kind, n, err)
	}

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m structured.Matrix, i, j, v int) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%d): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m structured.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts that m's logical view equals want.
func CompareExact(t *testing.T, want [][]int, m structured.Matrix) {
	t.Helper()
	n := m.Order()
	if len(want) != n {
		t.Fatalf("CompareExact: Order = %d; want %d", n, len(want))
	}
	var i, j, v int
	for i = 0; i < n; i++ {
		if len(want[i]) != n {
			t.Fatalf("CompareExact: row %d has %d cols; want %d", i, len(want[i]), n)
		}
		for j = 0; j < n; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%d; want %d", i, j, v, want[i][j])
			}
		}
	}
}

// fillDistinct writes i*100+j+1 to every in-bounds position in row-major
// order, structural zeros included.
func fillDistinct(t testing.TB, m structured.Matrix) {
	t.Helper()
	n := m.Order()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			MustSet(t, m, i, j, i*100+j+1)
		}
	}
}
