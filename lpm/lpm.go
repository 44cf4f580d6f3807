// SPDX-License-Identifier: MIT

package lpm

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robustcov/sandwich"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultN is the default number of observations per simulated dataset.
	DefaultN = 50

	// DefaultSeed is the default RNG seed.
	DefaultSeed = 0
)

// DefaultBeta returns the default true coefficient vector:
// intercept 0.5 and one slope 0.2, so P(y=1) stays inside (0,1) for all but
// the tails of a standard-normal covariate.
func DefaultBeta() []float64 { return []float64{0.5, 0.2} }

var (
	// ErrInvalidConfig indicates a non-positive sample size or an empty
	// coefficient vector.
	ErrInvalidConfig = errors.New("lpm: invalid config")

	// ErrNilDataset indicates a nil *Dataset (or one with a nil design matrix)
	// passed into Fit.
	ErrNilDataset = errors.New("lpm: nil dataset")

	// ErrTooFewRows indicates n <= K, leaving no degrees of freedom for the
	// residual variance behind the t-statistics.
	ErrTooFewRows = errors.New("lpm: too few rows for fit")
)

// Config controls one simulated dataset.
//
// Fields:
//   - N    — number of observations (rows of the design matrix).
//   - Beta — true coefficients; Beta[0] is the intercept, each further entry
//     adds one standard-normal covariate column.
//   - Seed — RNG seed; equal seeds yield byte-identical datasets.
type Config struct {
	N    int
	Beta []float64
	Seed uint64
}

// DefaultConfig returns the canonical teaching configuration:
// 50 observations, intercept + one covariate, seed 0.
func DefaultConfig() Config {
	return Config{N: DefaultN, Beta: DefaultBeta(), Seed: DefaultSeed}
}

// Dataset is one simulation replication (or one loaded real dataset):
// a design matrix with an intercept column of ones, and the binary outcome.
// Immutable by convention once constructed.
type Dataset struct {
	X *mat.Dense // n×K design matrix, column 0 all ones
	Y []float64  // length-n outcome, aligned with the rows of X
}

// Dims returns (n, K) of the design matrix.
func (d *Dataset) Dims() (n, k int) { return d.X.Dims() }

// FitResult holds the OLS results for a Dataset.
type FitResult struct {
	Coef         []float64 // length-K coefficient estimates
	Residuals    []float64 // length-n residuals y - Xβ̂, row-aligned with X
	FittedValues []float64 // length-n Xβ̂
	TStats       []float64 // length-K classical (non-robust) t-statistics
}

// Simulate draws one dataset from the linear-probability-model DGP:
//
//	xᵢ = (1, z₁, ..., z_{K-1}),  zⱼ ~ N(0,1)
//	yᵢ ~ Bernoulli(clamp(xᵢᵀβ, 0, 1))
//
// All randomness comes from a rand.Source seeded with cfg.Seed; no global
// state is read or written.
//
// Errors:
//   - ErrInvalidConfig — N <= 0 or len(Beta) == 0.
func Simulate(cfg Config) (*Dataset, error) {
	if cfg.N <= 0 || len(cfg.Beta) == 0 {
		return nil, fmt.Errorf("%w: N=%d, len(Beta)=%d", ErrInvalidConfig, cfg.N, len(cfg.Beta))
	}

	n, k := cfg.N, len(cfg.Beta)
	src := rand.NewSource(cfg.Seed)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	X := mat.NewDense(n, k, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		row := X.RawRowView(i)
		row[0] = 1.0
		for j := 1; j < k; j++ {
			row[j] = normal.Rand()
		}

		// Linear index, clamped into [0,1] so it is a valid probability.
		p := 0.0
		for j := 0; j < k; j++ {
			p += cfg.Beta[j] * row[j]
		}
		p = math.Min(1, math.Max(0, p))

		y[i] = distuv.Bernoulli{P: p, Src: src}.Rand()
	}

	return &Dataset{X: X, Y: y}, nil
}

// Fit estimates the linear probability model by OLS normal equations:
//
//	β̂ = (X'X)⁻¹ X'y
//
// and derives residuals, fitted values and classical t-statistics
// (t_j = β̂_j / sqrt(s²·[(X'X)⁻¹]_jj with s² = RSS/(n-K)).
//
// Errors:
//   - ErrNilDataset               — ds or ds.X is nil.
//   - sandwich.ErrDimensionMismatch — len(Y) != rows(X).
//   - ErrTooFewRows               — n <= K.
//   - sandwich.ErrSingularMatrix  — X'X not invertible.
func Fit(ds *Dataset) (*FitResult, error) {
	if ds == nil || ds.X == nil {
		return nil, ErrNilDataset
	}
	n, k := ds.X.Dims()
	if len(ds.Y) != n {
		return nil, fmt.Errorf("Fit: %w: X has %d rows, Y has length %d",
			sandwich.ErrDimensionMismatch, n, len(ds.Y))
	}
	if n <= k {
		return nil, fmt.Errorf("%w: n=%d, K=%d", ErrTooFewRows, n, k)
	}

	var xtx mat.Dense
	xtx.Mul(ds.X.T(), ds.X)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("Fit: %w: %v", sandwich.ErrSingularMatrix, err)
	}

	yVec := mat.NewVecDense(n, ds.Y)
	var xty, beta mat.VecDense
	xty.MulVec(ds.X.T(), yVec)
	beta.MulVec(&xtxInv, &xty)

	var fitted mat.VecDense
	fitted.MulVec(ds.X, &beta)

	coef := make([]float64, k)
	for j := 0; j < k; j++ {
		coef[j] = beta.AtVec(j)
	}

	residuals := make([]float64, n)
	fittedOut := make([]float64, n)
	rss := 0.0
	for i := 0; i < n; i++ {
		fittedOut[i] = fitted.AtVec(i)
		residuals[i] = ds.Y[i] - fittedOut[i]
		rss += residuals[i] * residuals[i]
	}

	s2 := rss / float64(n-k)
	tstats := make([]float64, k)
	for j := 0; j < k; j++ {
		tstats[j] = coef[j] / math.Sqrt(s2*xtxInv.At(j, j))
	}

	return &FitResult{
		Coef:         coef,
		Residuals:    residuals,
		FittedValues: fittedOut,
		TStats:       tstats,
	}, nil
}
