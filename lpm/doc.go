// Package lpm simulates and fits linear probability models, producing the
// (design matrix, residual vector) pairs that feed the sandwich estimator.
//
// 🚀 What is a linear probability model?
//
//	A binary-outcome regression estimated by plain OLS:
//
//	    yᵢ ∈ {0,1},  P(yᵢ=1 | xᵢ) = xᵢᵀβ,  fitted by least squares.
//
//	Its residuals are heteroskedastic by construction (variance p(1-p)
//	depends on x), which is exactly why it pairs naturally with
//	heteroskedasticity-robust covariance estimation.
//
// ✨ Key features:
//   - Simulate: seeded data generation — intercept plus standard-normal
//     covariates, Bernoulli outcomes with clamped success probability
//   - Fit: OLS via normal equations, exposing coefficients, residuals,
//     fitted values and classical t-statistics
//   - LoadCSV: build a Dataset from a flat outcome+covariates table
//
// Reproducibility policy: every random draw flows from the explicit
// Config.Seed through a local rand.Source. There is no package-global RNG,
// so two calls with equal configs yield identical datasets, and replication
// r of a Monte Carlo experiment can seed itself as BaseSeed+r without any
// cross-talk.
//
// ⚙️ Usage:
//
//	ds, err := lpm.Simulate(lpm.DefaultConfig())
//	fit, err := lpm.Fit(ds)
//	// fit.Residuals is aligned index-by-index with the rows of ds.X
package lpm
