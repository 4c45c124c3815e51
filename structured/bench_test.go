// Package structured_test provides benchmarks for the packed index mappings.
package structured_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/compactmat/structured"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{64, 256}

// sink defeats dead-code elimination.
var sinkI int

func BenchmarkAtSweep(b *testing.B) {
	for _, kind := range allKinds {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%v/n=%d", kind, n), func(b *testing.B) {
				m := MustNew(b, kind, n)
				fillDistinct(b, m)
				b.ReportAllocs()
				b.ResetTimer()
				for k := 0; k < b.N; k++ {
					s := 0
					for i := 0; i < n; i++ {
						for j := 0; j < n; j++ {
							v, _ := m.At(i, j)
							s += v
						}
					}
					sinkI = s
				}
			})
		}
	}
}

func BenchmarkSetSweep(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := structured.NewUpperTriangular(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				for i := 0; i < n; i++ {
					for j := i; j < n; j++ {
						_ = m.Set(i, j, k)
					}
				}
			}
		})
	}
}
