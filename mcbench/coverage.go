// SPDX-License-Identifier: MIT

package mcbench

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robustcov/lpm"
	"github.com/katalvlaran/robustcov/sandwich"
)

// slopeIndex is the coefficient whose interval is evaluated: the first
// non-intercept covariate.
const slopeIndex = 1

// Coverage estimates the coverage probability of the robust-SE confidence
// interval for the slope: the fraction of replications where
//
//	|β̂₁ - β₁| ≤ z·se₁,  z = Φ⁻¹(1-(1-level)/2)
//
// with se₁ the HC0 robust standard error. Standard errors are computed with
// ScaledCrossProduct; all strategies agree numerically, so the choice only
// affects speed.
//
// Replications run on the same bounded pool as RunParallel (cfg.Workers).
//
// Errors:
//   - ErrInvalidConfig — bad sizes, level outside (0,1), or len(Beta) < 2
//     (no slope to cover).
//   - any lpm or sandwich error from a replication, wrapped with its index.
func Coverage(ctx context.Context, cfg Config, level float64) (CoverageResult, error) {
	if err := validate(cfg); err != nil {
		return CoverageResult{}, err
	}
	if level <= 0 || level >= 1 {
		return CoverageResult{}, fmt.Errorf("%w: level %v outside (0,1)", ErrInvalidConfig, level)
	}
	if len(cfg.Beta) <= slopeIndex {
		return CoverageResult{}, fmt.Errorf("%w: Beta has no slope coefficient", ErrInvalidConfig)
	}

	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	trueSlope := cfg.Beta[slopeIndex]

	covered := make([]bool, cfg.Replications)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for rep := 0; rep < cfg.Replications; rep++ {
		rep := rep
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ds, err := lpm.Simulate(lpm.Config{
				N:    cfg.N,
				Beta: cfg.Beta,
				Seed: cfg.BaseSeed + uint64(rep),
			})
			if err != nil {
				return fmt.Errorf("replication %d: %w", rep, err)
			}
			fit, err := lpm.Fit(ds)
			if err != nil {
				return fmt.Errorf("replication %d: %w", rep, err)
			}
			se, err := sandwich.StdErrors(ds.X, fit.Residuals, sandwich.ScaledCrossProduct)
			if err != nil {
				return fmt.Errorf("replication %d: %w", rep, err)
			}

			covered[rep] = math.Abs(fit.Coef[slopeIndex]-trueSlope) <= z*se[slopeIndex]

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CoverageResult{}, err
	}

	count := 0
	for _, c := range covered {
		if c {
			count++
		}
	}

	return CoverageResult{
		Level:        level,
		Replications: cfg.Replications,
		Covered:      count,
		Rate:         float64(count) / float64(cfg.Replications),
	}, nil
}
