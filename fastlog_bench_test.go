package fastlog

import (
	"math"
	"testing"

	"github.com/meko-christian/algo-approx"
)

var benchSink float64

func benchValues() []float64 {
	vals := make([]float64, 4096)
	for i := range vals {
		vals[i] = 1.0 + float64(i)*0.001
	}
	return vals
}

func BenchmarkLog2(b *testing.B) {
	vals := benchValues()
	for _, o := range Orders() {
		b.Run(o.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			var sum float64
			for i := 0; i < b.N; i++ {
				sum += o.Log2(vals[i&4095])
			}
			benchSink = sum
		})
	}
}

func BenchmarkMathLog2(b *testing.B) {
	vals := benchValues()
	b.ReportAllocs()
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += math.Log2(vals[i&4095])
	}
	benchSink = sum
}

// BenchmarkApproxFastLog measures the algo-approx baseline via the
// identity log2(x) = ln(x) / ln(2), the same conversion the compressor
// fast path in algo-dsp uses.
func BenchmarkApproxFastLog(b *testing.B) {
	vals := benchValues()
	b.ReportAllocs()
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += approx.FastLog(vals[i&4095]) / Ln2
	}
	benchSink = sum
}

func BenchmarkLog2Block(b *testing.B) {
	vals := benchValues()
	dst := make([]float64, len(vals))
	for _, o := range []Order{Order1, Order6} {
		b.Run(o.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = o.Log2Block(dst, vals)
			}
		})
	}
}
