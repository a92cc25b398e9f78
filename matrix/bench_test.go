// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for dense kernels, view reads and
// copy-on-write materialization, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV []float64
	sinkF float64
)

func randMatrix(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.FromColumnMajor(n, n, data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randMatrix(b, n, 1337), randMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add[float64](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randMatrix(b, n, 7), randMatrix(b, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul[float64](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose[float64](A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkViewAt reads every element through a view of a view.
func BenchmarkViewAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 5)
			v1, err := A.Window(0, 0, n, n)
			if err != nil {
				b.Fatal(err)
			}
			v2, err := v1.Window(0, 0, n/2, n/2)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				var acc float64
				for j := 0; j < n/2; j++ {
					for i := 0; i < n/2; i++ {
						x, _ := v2.At(i, j)
						acc += x
					}
				}
				sinkF = acc
			}
		})
	}
}

// BenchmarkGatherView measures the snapshot cost of a strided view.
func BenchmarkGatherView(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 9)
			even := make([]int, 0, n/2)
			for i := 0; i < n; i += 2 {
				even = append(even, i)
			}
			v, err := A.View(even, even)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				data, err := matrix.Gather[float64](v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = data
			}
		})
	}
}

// BenchmarkMaterialize measures the first parent write with 8 live views.
func BenchmarkMaterialize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				A := randMatrix(b, n, int64(i))
				views := make([]*matrix.Matrix[float64], 8)
				for k := range views {
					v, err := A.Window(0, 0, n/2, n/2)
					if err != nil {
						b.Fatal(err)
					}
					views[k] = v
				}
				b.StartTimer()
				if err := A.Set(0, 0, 1); err != nil {
					b.Fatal(err)
				}
				sinkM = views[0]
			}
		})
	}
}
