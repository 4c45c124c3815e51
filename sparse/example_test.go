package sparse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/compactmat/sparse"
)

// ExampleAdd shows cancellation removing an entry from the sum.
func ExampleAdd() {
	a, _ := sparse.NewMatrix(2, 2,
		sparse.Triplet{Row: 0, Col: 0, Value: 3},
		sparse.Triplet{Row: 1, Col: 1, Value: 5},
	)
	b, _ := sparse.NewMatrix(2, 2,
		sparse.Triplet{Row: 0, Col: 0, Value: -3},
		sparse.Triplet{Row: 0, Col: 1, Value: 2},
	)
	sum, err := sparse.Add(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range sum.Entries() {
		fmt.Println(e.Row, e.Col, e.Value)
	}

	// Output:
	// 0 1 2
	// 1 1 5
}

// ExampleMultiply shows a shape mismatch being reported instead of attempted.
func ExampleMultiply() {
	a, _ := sparse.NewMatrix(2, 3, sparse.Triplet{Row: 0, Col: 2, Value: 1})
	b, _ := sparse.NewMatrix(2, 2, sparse.Triplet{Row: 0, Col: 1, Value: 4})

	_, err := sparse.Multiply(a, b)
	fmt.Println(errors.Is(err, sparse.ErrDimensionMismatch))

	bt, _ := sparse.Transpose(a) // 3×2
	p, _ := sparse.Multiply(bt, b)
	fmt.Print(p)

	// Output:
	// true
	// 3×2, 1 non-zero
	// Row Col Value
	// 2   1   4
}

// ExampleTranspose swaps every entry's coordinates.
func ExampleTranspose() {
	m, _ := sparse.NewMatrix(2, 3,
		sparse.Triplet{Row: 0, Col: 1, Value: 8},
		sparse.Triplet{Row: 1, Col: 2, Value: 9},
	)
	t, _ := sparse.Transpose(m)
	fmt.Print(t)

	// Output:
	// 3×2, 2 non-zero
	// Row Col Value
	// 1   0   8
	// 2   1   9
}
