// Package sparse_test provides benchmarks for the triplet operations,
// using deterministic random fill.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/compactmat/sparse"
)

// benchSizes are the square shapes to benchmark.
var benchSizes = []int{64, 256}

// sinkM defeats dead-code elimination.
var sinkM *sparse.Matrix

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandMatrix(b, n, n, 0.05, 1337)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := sparse.Transpose(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandMatrix(b, n, n, 0.05, 11)
			y := RandMatrix(b, n, n, 0.05, 22)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	for _, n := range benchSizes {
		for _, k := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, k), func(b *testing.B) {
				x := RandMatrix(b, n, n, 0.02, 5)
				y := RandMatrix(b, n, n, 0.02, 6)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					out, err := sparse.Multiply(x, y, sparse.WithWorkers(k))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = out
				}
			})
		}
	}
}
