// SPDX-License-Identifier: MIT

package mcbench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/robustcov/lpm"
	"github.com/katalvlaran/robustcov/sandwich"
)

// validate performs fail-fast configuration checks shared by all entry points.
func validate(cfg Config) error {
	if cfg.N <= 0 || cfg.Replications <= 0 || cfg.Workers < 1 {
		return fmt.Errorf("%w: N=%d, Replications=%d, Workers=%d",
			ErrInvalidConfig, cfg.N, cfg.Replications, cfg.Workers)
	}
	if len(cfg.Beta) == 0 {
		return fmt.Errorf("%w: empty coefficient vector", ErrInvalidConfig)
	}
	if len(cfg.Strategies) == 0 {
		return fmt.Errorf("%w: empty strategy list", ErrInvalidConfig)
	}
	for _, s := range cfg.Strategies {
		if !s.Valid() {
			return fmt.Errorf("%w: %s", sandwich.ErrUnknownStrategy, s)
		}
	}

	return nil
}

// replicate runs one replication: simulate with seed BaseSeed+rep, fit once,
// then time each configured strategy on the identical (X, residuals) pair.
// Returned durations are index-aligned with cfg.Strategies.
//
// Any estimator error aborts the replication and propagates — continuing
// with invalid input would corrupt the comparative totals.
func replicate(cfg Config, rep int) ([]time.Duration, error) {
	ds, err := lpm.Simulate(lpm.Config{
		N:    cfg.N,
		Beta: cfg.Beta,
		Seed: cfg.BaseSeed + uint64(rep),
	})
	if err != nil {
		return nil, fmt.Errorf("replication %d: %w", rep, err)
	}

	fit, err := lpm.Fit(ds)
	if err != nil {
		return nil, fmt.Errorf("replication %d: %w", rep, err)
	}

	durations := make([]time.Duration, len(cfg.Strategies))
	for si, s := range cfg.Strategies {
		start := time.Now()
		_, serr := sandwich.Sandwich(ds.X, fit.Residuals, s)
		durations[si] = time.Since(start)
		if serr != nil {
			return nil, fmt.Errorf("replication %d: %w", rep, serr)
		}
	}

	return durations, nil
}

// collect folds per-replication durations into one Result per strategy,
// preserving cfg.Strategies order.
func collect(cfg Config, perRep [][]time.Duration) []Result {
	results := make([]Result, len(cfg.Strategies))
	for si, s := range cfg.Strategies {
		results[si] = Result{Strategy: s, Replications: cfg.Replications}
	}
	for _, durations := range perRep {
		for si, d := range durations {
			results[si].Elapsed += d
		}
	}

	return results
}

// Run executes the experiment sequentially and returns one Result per
// configured strategy, in configuration order.
//
// The context is checked between replications; cancellation returns ctx.Err().
//
// Errors:
//   - ErrInvalidConfig / sandwich.ErrUnknownStrategy — bad configuration.
//   - any lpm or sandwich error from a replication, wrapped with its index.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	perRep := make([][]time.Duration, 0, cfg.Replications)
	for rep := 0; rep < cfg.Replications; rep++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		durations, err := replicate(cfg, rep)
		if err != nil {
			return nil, err
		}
		perRep = append(perRep, durations)
	}

	return collect(cfg, perRep), nil
}

// RunParallel executes the same experiment with replications distributed
// over a pool of at most cfg.Workers goroutines. Replications are
// embarrassingly parallel — no shared mutable state beyond the index-aligned
// collection slice — and per-strategy totals are summed only after the whole
// group has finished, so results match Run on the same configuration.
//
// For very cheap per-replication work the dispatch overhead can exceed the
// time saved; slower-than-sequential wall clock is expected there.
func RunParallel(ctx context.Context, cfg Config) ([]Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	perRep := make([][]time.Duration, cfg.Replications)

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

			durations, err := replicate(cfg, rep)
			if err != nil {
				return err
			}
			perRep[rep] = durations

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return collect(cfg, perRep), nil
}
