// Package robustcov is a compact toolkit for heteroskedasticity-robust
// covariance estimation and for measuring what equivalent math costs in
// practice.
//
// 🚀 What is robustcov?
//
//	A small, focused library that brings together:
//		• Sandwich estimation: the robust "middle term" Σ eᵢ²·xᵢxᵢᵀ computed
//		  four mathematically equivalent — but computationally very different — ways
//		• A seeded linear-probability-model generator + OLS fitter to feed it
//		• A Monte Carlo benchmark harness: per-strategy wall-clock totals,
//		  sequential or across a bounded worker pool
//		• Confidence-interval coverage experiments using robust standard errors
//
// ✨ Why choose robustcov?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random draw flows from an explicit seed, never globals
//   - Honest numbers – all strategies agree to floating-point tolerance, so the
//     timing table measures implementation cost only
//
// Everything is organized under three subpackages plus one command:
//
//	sandwich/       — the estimator: four Middle strategies + full Sandwich
//	lpm/            — linear probability model: simulate, fit, load CSV
//	mcbench/        — Monte Carlo timing & coverage harness
//	cmd/robustbench — CLI printing the comparative timing table
//
// Quick taste:
//
//	ds, _ := lpm.Simulate(lpm.DefaultConfig())
//	fit, _ := lpm.Fit(ds)
//	M, _ := sandwich.Middle(ds.X, fit.Residuals, sandwich.ScaledCrossProduct)
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/robustcov
package robustcov
