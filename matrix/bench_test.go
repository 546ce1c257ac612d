// Package matrix_test provides benchmarks for the Dense kernels and codec,
// using deterministic random fill.
package matrix_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkN int
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 1337)
			B := RandomDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
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
			A := RandomDense(b, n, n, 1)
			B := RandomDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
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
			A := RandomDense(b, n, 2*n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.T(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEncodeDecode(b *testing.B) {
	b.ReportAllocs()
	A := RandomDense(b, 128, 128, 7)
	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := matrix.Encode(&buf, A); err != nil {
			b.Fatal(err)
		}
		sinkN = buf.Len()
		m, err := matrix.Decode[float64](&buf)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
