// SPDX-License-Identifier: MIT

// Package structured: domain types shared by every storage layout.
// This file contains ONLY the Kind enum and the Matrix capability set.
// Index formulas live in the impl_*.go files, one per layout.
package structured

// Kind identifies a structured storage layout.
type Kind int

// Supported layouts. The zero value is deliberately invalid so that an
// uninitialized Kind is caught by New and StorageSize.
const (
	KindDiagonal Kind = iota + 1
	KindTridiagonal
	KindLowerTriangular
	KindUpperTriangular
	KindSymmetric
)

// kindNames maps Kind to the concrete type name used in error context.
var kindNames = map[Kind]string{
	KindDiagonal:        "Diagonal",
	KindTridiagonal:     "Tridiagonal",
	KindLowerTriangular: "LowerTriangular",
	KindUpperTriangular: "UpperTriangular",
	KindSymmetric:       "Symmetric",
}

// String returns the layout name, e.g. "Tridiagonal".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "Kind(?)"
}

// Matrix is the access contract shared by all structured layouts.
// Callers that only read and write entries can treat every layout the same
// way; the index mapping stays private to each implementation.
//
// Complexity notes: all methods are O(1) except Clone (O(Len())).
type Matrix interface {
	// Order returns n for the n×n logical matrix.
	Order() int

	// Len returns the size of the backing store, fixed at construction.
	Len() int

	// Kind reports the storage layout.
	Kind() Kind

	// At returns the logical entry A[i][j]. Structural zeros read as 0.
	// Returns ErrOutOfRange if i or j is outside [0, n).
	At(i, j int) (int, error)

	// Set assigns A[i][j] = v. Writes to structural zeros are ignored and
	// return nil. Returns ErrOutOfRange if i or j is outside [0, n).
	Set(i, j, v int) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
