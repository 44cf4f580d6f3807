// Package sandwich defines the strategy selector for the middle-term kernels.
package sandwich

import "strconv"

// Strategy selects which of the four mathematically equivalent kernels
// computes the middle term M = (1/n)·Σ eᵢ²·xᵢxᵢᵀ.
//
//   - ElementwiseAccumulation — per-observation outer products accumulated
//     into a running K×K sum. The baseline: asymptotically O(n·K²) but with a
//     fresh K×K temporary every iteration, so constant factors dominate.
//
//   - DenseWeightedProduct — builds the full dense n×n matrix diag(e²) and
//     computes X'·D·X. Correct, but O(n²) memory and O(n²·K) time spent
//     multiplying through zeros.
//
//   - SparseWeightedProduct — same X'·D·X with D stored as a diagonal
//     (n nonzeros). O(n·K²) time, O(n) memory for D.
//
//   - ScaledCrossProduct — scales row i of X by eᵢ and computes Xe'·Xe.
//     No n×n structure, no per-row temporaries; the cache-friendly fastest.
//
// All four return the same matrix up to floating-point rounding; they differ
// only in cost. That equivalence is what makes the timing table meaningful.
type Strategy int

const (
	// ElementwiseAccumulation: row-by-row outer-product accumulation (baseline).
	ElementwiseAccumulation Strategy = iota

	// DenseWeightedProduct: explicit dense n×n diag(e²), then X'·D·X.
	DenseWeightedProduct

	// SparseWeightedProduct: diagonal-only storage for D, then X'·D·X.
	SparseWeightedProduct

	// ScaledCrossProduct: row-scaled design Xe, then Xe'·Xe.
	ScaledCrossProduct
)

// strategyNames maps Strategy values to their canonical display names.
var strategyNames = [...]string{
	ElementwiseAccumulation: "ElementwiseAccumulation",
	DenseWeightedProduct:    "DenseWeightedProduct",
	SparseWeightedProduct:   "SparseWeightedProduct",
	ScaledCrossProduct:      "ScaledCrossProduct",
}

// String returns the canonical strategy name, or "Strategy(<n>)" for values
// outside the closed set.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
	return strategyNames[s]
}

// Valid reports whether s is a member of the closed strategy set.
func (s Strategy) Valid() bool {
	return s >= ElementwiseAccumulation && s <= ScaledCrossProduct
}

// Strategies returns all strategies in declaration order. The slice is fresh
// on every call; callers may reorder or filter it freely.
func Strategies() []Strategy {
	return []Strategy{
		ElementwiseAccumulation,
		DenseWeightedProduct,
		SparseWeightedProduct,
		ScaledCrossProduct,
	}
}
