// Package mcbench defines the harness configuration and result types.
package mcbench

import (
	"errors"
	"time"

	"github.com/katalvlaran/robustcov/lpm"
	"github.com/katalvlaran/robustcov/sandwich"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultN is the default observations per replication.
	DefaultN = 50

	// DefaultReplications is the default Monte Carlo replication count.
	DefaultReplications = 1000

	// DefaultWorkers is the default pool size; 1 means effectively sequential
	// dispatch even through RunParallel.
	DefaultWorkers = 1

	// DefaultBaseSeed seeds replication r with DefaultBaseSeed + r.
	DefaultBaseSeed = 0

	// DefaultCoverageLevel is the nominal confidence level for Coverage.
	DefaultCoverageLevel = 0.95
)

// ErrInvalidConfig indicates a non-positive size, an empty strategy list, a
// strategy outside the closed set, or a confidence level outside (0,1).
var ErrInvalidConfig = errors.New("mcbench: invalid config")

// Config controls one experiment.
//
// Fields:
//   - N            — observations per replication.
//   - Replications — number of independent replications.
//   - Workers      — pool bound for RunParallel and Coverage (≥1).
//   - BaseSeed     — replication r simulates with seed BaseSeed+r.
//   - Beta         — true coefficients passed through to lpm.Simulate.
//   - Strategies   — strategies to time, in reporting order.
type Config struct {
	N            int
	Replications int
	Workers      int
	BaseSeed     uint64
	Beta         []float64
	Strategies   []sandwich.Strategy
}

// DefaultConfig returns the canonical experiment: n=50, 1000 replications,
// one worker, seed 0, the default LPM coefficients and all four strategies.
func DefaultConfig() Config {
	return Config{
		N:            DefaultN,
		Replications: DefaultReplications,
		Workers:      DefaultWorkers,
		BaseSeed:     DefaultBaseSeed,
		Beta:         lpm.DefaultBeta(),
		Strategies:   sandwich.Strategies(),
	}
}

// Result is the cumulative wall-clock cost of one strategy across all
// replications of an experiment.
type Result struct {
	Strategy     sandwich.Strategy
	Elapsed      time.Duration
	Replications int
}

// CoverageResult summarizes a confidence-interval coverage experiment.
type CoverageResult struct {
	Level        float64 // nominal confidence level, e.g. 0.95
	Replications int     // replications evaluated
	Covered      int     // replications whose interval contained the true slope
	Rate         float64 // Covered / Replications
}
