// Package sandwich computes heteroskedasticity-robust "sandwich" covariance
// estimates for linear models, with a selectable kernel for the middle term.
//
// 🚀 What is the sandwich estimator?
//
//	For a fitted linear model with design matrix X (n×K, intercept included)
//	and residuals e, the robust covariance estimate is
//
//	    V = (X'X)⁻¹ · M · (X'X)⁻¹,   M = (1/n)·Σᵢ eᵢ²·xᵢxᵢᵀ
//
//	M — the "middle term" — is the computationally interesting part: it can
//	be computed at least four mathematically equivalent ways whose wall-clock
//	costs differ by orders of magnitude. This package implements all four so
//	that the difference can be measured, not argued about.
//
// ✨ Key features:
//   - Middle: the four strategies (see Strategy), numerically equal within
//     floating-point rounding
//   - Sandwich: the full (X'X)⁻¹·M·(X'X)⁻¹ combination
//   - StdErrors: conventional HC0 robust standard errors for each coefficient
//   - strict fail-fast validation with errors.Is-matchable sentinels
//
// ⚙️ Usage:
//
//	M, err := sandwich.Middle(X, residuals, sandwich.ScaledCrossProduct)
//	if err != nil {
//	    // ErrDimensionMismatch, ErrEmptyInput or ErrUnknownStrategy
//	}
//	V, err := sandwich.Sandwich(X, residuals, sandwich.ScaledCrossProduct)
//	if err != nil {
//	    // additionally ErrSingularMatrix when X'X is not invertible
//	}
//
// Performance:
//
//   - ElementwiseAccumulation: O(n·K²) time, heavy allocation churn
//   - DenseWeightedProduct:    O(n²·K) time, O(n²) memory
//   - SparseWeightedProduct:   O(n·K²) time, O(n) memory for the diagonal
//   - ScaledCrossProduct:      O(n·K²) time, O(n·K) memory, fastest in practice
//
// All operations are pure functions of their inputs: no mutation, no global
// state, no hidden randomness. See example_test.go for worked examples and
// the mcbench package for the timing harness.
package sandwich
