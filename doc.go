// Package compactmat stores integer matrices in space proportional to their
// non-zero (or non-redundant) entries and operates on them without expanding
// to n² cells.
//
// Under the hood, everything is organized under two leaf subpackages:
//
//	structured/ — Diagonal, Tridiagonal, Lower/UpperTriangular and Symmetric
//	              layouts behind one At/Set contract, with closed-form index maps
//	sparse/     — triplet (COO) matrix with Transpose, Add and Multiply
//
// Neither package reads input or prints output; callers supply shapes and
// entries and receive values or triplet lists back.
//
// Quick example:
//
//	s, _ := structured.NewSymmetric(3)
//	_ = s.Set(0, 2, 7)
//	v, _ := s.At(2, 0) // 7
//
//	go get github.com/katalvlaran/compactmat
package compactmat
