// Package structured stores square integer matrices whose non-zero pattern
// is known in advance, using memory proportional to that pattern instead of n².
//
// The structured package provides:
//
//   - Diagonal (n cells), Tridiagonal (3n-2 cells).
//   - LowerTriangular and UpperTriangular (n(n+1)/2 cells, packed row-major).
//   - Symmetric (n(n+1)/2 cells, lower triangle shared by A[i][j] and A[j][i]).
//
// Every layout implements Matrix, so callers that only need At/Set can hold
// any of them behind the interface. Coordinates are always bounds-checked
// first: At(n, 0) fails with ErrOutOfRange on every layout. A write to a
// position the layout cannot represent (a structural zero) is accepted and
// dropped; a read there returns 0.
//
// Values are plain ints; no floating point, no arithmetic between layouts.
package structured
