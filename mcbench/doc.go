// Package mcbench drives Monte Carlo timing and coverage experiments for the
// sandwich estimator.
//
// 🚀 What does it measure?
//
//	For a fixed (n, replications) configuration it repeatedly draws a fresh
//	linear-probability-model dataset, fits it once by OLS, then times every
//	configured Strategy of sandwich.Sandwich on that same (X, residuals)
//	pair. Identical inputs per replication make the per-strategy cumulative
//	wall-clock totals directly comparable: the math is equal, only the
//	implementation differs.
//
// ✨ Key features:
//   - Run: sequential replication loop, one Result per strategy
//   - RunParallel: the same work spread over a bounded worker pool
//     (errgroup with SetLimit); results are collected index-aligned
//   - Coverage: fraction of replications whose robust-SE confidence interval
//     contains the true slope
//
// Reproducibility: replication r seeds its generator with BaseSeed+r, so a
// run is bit-reproducible and every strategy within a replication sees the
// same data. Seeding is explicit configuration, never global state.
//
// A note on the pool: for workloads this cheap, dispatch overhead can exceed
// the time saved, making RunParallel *slower* than Run. That is an expected
// property of pool-based scheduling, not a bug — nothing here promises a
// speedup, and the tests assert equivalence of results, never ordering of
// wall-clock totals between the two modes.
//
// ⚙️ Usage:
//
//	results, err := mcbench.Run(ctx, mcbench.DefaultConfig())
//	for _, res := range results {
//	    fmt.Printf("%-24s %v\n", res.Strategy, res.Elapsed)
//	}
package mcbench
