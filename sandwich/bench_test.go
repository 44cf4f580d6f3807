package sandwich_test

import (
	"testing"

	"github.com/katalvlaran/robustcov/lpm"
	"github.com/katalvlaran/robustcov/sandwich"
)

// benchmarkMiddle times one strategy on a fixed simulated dataset of n rows.
// Setup (simulation + fit) is excluded from the measured loop.
func benchmarkMiddle(b *testing.B, n int, strategy sandwich.Strategy) {
	cfg := lpm.DefaultConfig()
	cfg.N = n

	ds, err := lpm.Simulate(cfg)
	if err != nil {
		b.Fatalf("Simulate failed: %v", err)
	}
	fit, err := lpm.Fit(ds)
	if err != nil {
		b.Fatalf("Fit failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = sandwich.Middle(ds.X, fit.Residuals, strategy); err != nil {
			b.Fatalf("Middle failed: %v", err)
		}
	}
}

// BenchmarkMiddle_ElementwiseSmall benchmarks the accumulation baseline at n=50.
func BenchmarkMiddle_ElementwiseSmall(b *testing.B) {
	benchmarkMiddle(b, 50, sandwich.ElementwiseAccumulation)
}

// BenchmarkMiddle_DenseSmall benchmarks the dense n×n weighting at n=50.
func BenchmarkMiddle_DenseSmall(b *testing.B) {
	benchmarkMiddle(b, 50, sandwich.DenseWeightedProduct)
}

// BenchmarkMiddle_SparseSmall benchmarks the diagonal weighting at n=50.
func BenchmarkMiddle_SparseSmall(b *testing.B) {
	benchmarkMiddle(b, 50, sandwich.SparseWeightedProduct)
}

// BenchmarkMiddle_ScaledSmall benchmarks the row-scaled cross product at n=50.
func BenchmarkMiddle_ScaledSmall(b *testing.B) {
	benchmarkMiddle(b, 50, sandwich.ScaledCrossProduct)
}

// BenchmarkMiddle_ElementwiseMedium benchmarks the baseline at n=1000.
func BenchmarkMiddle_ElementwiseMedium(b *testing.B) {
	benchmarkMiddle(b, 1000, sandwich.ElementwiseAccumulation)
}

// BenchmarkMiddle_DenseMedium benchmarks the dense weighting at n=1000,
// where the wasted O(n²) work becomes unmistakable.
func BenchmarkMiddle_DenseMedium(b *testing.B) {
	benchmarkMiddle(b, 1000, sandwich.DenseWeightedProduct)
}

// BenchmarkMiddle_SparseMedium benchmarks the diagonal weighting at n=1000.
func BenchmarkMiddle_SparseMedium(b *testing.B) {
	benchmarkMiddle(b, 1000, sandwich.SparseWeightedProduct)
}

// BenchmarkMiddle_ScaledMedium benchmarks the row-scaled cross product at n=1000.
func BenchmarkMiddle_ScaledMedium(b *testing.B) {
	benchmarkMiddle(b, 1000, sandwich.ScaledCrossProduct)
}
