// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Operations return these sentinels wrapped with the operation tag; callers
// match them via errors.Is. No operation panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when rows <= 0 or cols <= 0.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates a triplet or accessor coordinate outside the shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add requires identical rows×cols, Multiply requires a.Cols == b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrUnsorted is returned by Add when an operand is not strictly
	// row-major and WithNormalize was not requested.
	ErrUnsorted = errors.New("sparse: entries not in row-major order")

	// ErrTooLarge is returned by Multiply when the r1×c2 accumulator would
	// exceed MaxAccumulatorCells.
	ErrTooLarge = errors.New("sparse: result too large to accumulate")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf wraps err with an operation tag, e.g. "Add: sparse: dimension mismatch".
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps ErrDimensionMismatch with both operand shapes.
func shapeErrorf(tag string, a, b *Matrix) error {
	return fmt.Errorf("%s: %d×%d vs %d×%d: %w", tag, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
}
