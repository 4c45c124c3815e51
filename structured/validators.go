// SPDX-License-Identifier: MIT
// Package: structured
//
// Purpose:
//   - Single source of truth for the order and bounds checks every layout shares.
//   - Return plain sentinels; accessors wrap them with method and coordinates.
//
// Note:
//   - checkIndex runs BEFORE any structural classification, so an access such as
//     At(n, 0) on a Diagonal fails instead of reporting a structural zero.

package structured

// validateOrder rejects non-positive orders with ErrInvalidDimensions.
func validateOrder(n int) error {
	if n <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// checkIndex reports ErrOutOfRange unless 0 <= i,j < n.
// Complexity: O(1).
func checkIndex(n, i, j int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	if j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}

// triangleLen returns n(n+1)/2, the packed size of one triangle with its diagonal.
func triangleLen(n int) int {
	return n * (n + 1) / 2
}

// lowerIndex is the row-major packed offset of (i, j) in a lower triangle.
// Assumes i >= j.
func lowerIndex(i, j int) int {
	return i*(i+1)/2 + j
}
