// SPDX-License-Identifier: MIT
// Package structured: sentinel error set.
// This file defines ONLY package-level sentinel errors. Accessors and
// constructors return these sentinels wrapped with call-site context, and
// tests match them via errors.Is. No accessor panics on user input.

package structured

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "structured: ..." so it can be grepped in
// logs. Wrap with accessorErrorf/structErrorf; never compare with ==.
//
// ERROR PRIORITY (enforced in tests):
// dimension -> index bounds -> structural support (never an error).

var (
	// ErrInvalidDimensions is returned when a matrix is constructed with n <= 0.
	ErrInvalidDimensions = errors.New("structured: dimensions must be > 0")

	// ErrOutOfRange indicates that i or j is outside [0, n).
	// It is reported even when the position is a structural zero.
	ErrOutOfRange = errors.New("structured: index out of range")

	// ErrUnknownKind is returned by New/StorageSize for an unsupported Kind.
	ErrUnknownKind = errors.New("structured: unknown matrix kind")

	// ErrNilMatrix indicates that a nil Matrix was passed to a helper.
	ErrNilMatrix = errors.New("structured: nil matrix")
)

// accessorErrorf wraps err with the concrete type, method and coordinates.
// Example: "Tridiagonal.At(5,0): structured: index out of range".
func accessorErrorf(kind Kind, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, i, j, err)
}

// structErrorf wraps err with a plain tag.
func structErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
