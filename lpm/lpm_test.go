package lpm_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/robustcov/lpm"
	"github.com/katalvlaran/robustcov/sandwich"
)

const epsTight = 1e-9

// TestSimulate_Shape checks dimensions, the intercept column and the binary
// outcome range.
func TestSimulate_Shape(t *testing.T) {
	t.Parallel()

	ds, err := lpm.Simulate(lpm.Config{N: 40, Beta: []float64{0.5, 0.2, -0.1}, Seed: 7})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	n, k := ds.Dims()
	if n != 40 || k != 3 {
		t.Fatalf("dims = (%d,%d), want (40,3)", n, k)
	}
	if len(ds.Y) != n {
		t.Fatalf("len(Y) = %d, want %d", len(ds.Y), n)
	}
	for i := 0; i < n; i++ {
		if ds.X.At(i, 0) != 1.0 {
			t.Fatalf("row %d: intercept = %v, want 1", i, ds.X.At(i, 0))
		}
		if ds.Y[i] != 0 && ds.Y[i] != 1 {
			t.Fatalf("row %d: outcome = %v, want 0 or 1", i, ds.Y[i])
		}
	}
}

// TestSimulate_Deterministic checks that equal seeds reproduce the dataset
// exactly and different seeds do not.
func TestSimulate_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := lpm.DefaultConfig()
	a, err := lpm.Simulate(cfg)
	if err != nil {
		t.Fatalf("first Simulate: %v", err)
	}
	b, err := lpm.Simulate(cfg)
	if err != nil {
		t.Fatalf("second Simulate: %v", err)
	}

	if !mat.Equal(a.X, b.X) {
		t.Fatal("same seed produced different design matrices")
	}
	for i := range a.Y {
		if a.Y[i] != b.Y[i] {
			t.Fatalf("same seed produced different outcomes at row %d", i)
		}
	}

	cfg.Seed = 1
	c, err := lpm.Simulate(cfg)
	if err != nil {
		t.Fatalf("third Simulate: %v", err)
	}
	if mat.Equal(a.X, c.X) {
		t.Fatal("different seeds produced identical design matrices")
	}
}

// TestSimulate_InvalidConfig checks fail-fast validation.
func TestSimulate_InvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := lpm.Simulate(lpm.Config{N: 0, Beta: lpm.DefaultBeta()}); !errors.Is(err, lpm.ErrInvalidConfig) {
		t.Fatalf("N=0: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := lpm.Simulate(lpm.Config{N: 10, Beta: nil}); !errors.Is(err, lpm.ErrInvalidConfig) {
		t.Fatalf("empty Beta: err = %v, want ErrInvalidConfig", err)
	}
}

// TestFit_ResidualOrthogonality checks the defining OLS property X'e ≈ 0.
func TestFit_ResidualOrthogonality(t *testing.T) {
	t.Parallel()

	ds, err := lpm.Simulate(lpm.DefaultConfig())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	fit, err := lpm.Fit(ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	n, k := ds.Dims()
	e := mat.NewVecDense(n, fit.Residuals)
	var xte mat.VecDense
	xte.MulVec(ds.X.T(), e)
	for j := 0; j < k; j++ {
		if math.Abs(xte.AtVec(j)) > epsTight {
			t.Fatalf("X'e[%d] = %g, want ~0", j, xte.AtVec(j))
		}
	}
}

// TestFit_RecoversExactCoefficients feeds Fit a noiseless linear outcome and
// expects the coefficients back with ~zero residuals.
func TestFit_RecoversExactCoefficients(t *testing.T) {
	t.Parallel()

	X := mat.NewDense(5, 2, []float64{
		1, -2,
		1, -1,
		1, 0,
		1, 1,
		1, 2,
	})
	beta := []float64{0.4, 0.3}
	y := make([]float64, 5)
	for i := 0; i < 5; i++ {
		y[i] = beta[0]*X.At(i, 0) + beta[1]*X.At(i, 1)
	}

	fit, err := lpm.Fit(&lpm.Dataset{X: X, Y: y})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for j := range beta {
		if math.Abs(fit.Coef[j]-beta[j]) > epsTight {
			t.Fatalf("coef[%d] = %g, want %g", j, fit.Coef[j], beta[j])
		}
	}
	for i, r := range fit.Residuals {
		if math.Abs(r) > epsTight {
			t.Fatalf("residual[%d] = %g, want ~0", i, r)
		}
		if math.Abs(fit.FittedValues[i]-y[i]) > epsTight {
			t.Fatalf("fitted[%d] = %g, want %g", i, fit.FittedValues[i], y[i])
		}
	}
	if len(fit.TStats) != 2 {
		t.Fatalf("len(TStats) = %d, want 2", len(fit.TStats))
	}
}

// TestFit_ReturnsFitResult pins the exported surface: the function Fit and
// the FitResult type coexist under distinct names, and the result carries
// every field a consumer reads.
func TestFit_ReturnsFitResult(t *testing.T) {
	t.Parallel()

	ds, err := lpm.Simulate(lpm.DefaultConfig())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	var res *lpm.FitResult
	res, err = lpm.Fit(ds)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	n, k := ds.Dims()
	if len(res.Coef) != k || len(res.TStats) != k {
		t.Fatalf("coefficient shapes: coef=%d tstats=%d, want %d", len(res.Coef), len(res.TStats), k)
	}
	if len(res.Residuals) != n || len(res.FittedValues) != n {
		t.Fatalf("observation shapes: residuals=%d fitted=%d, want %d",
			len(res.Residuals), len(res.FittedValues), n)
	}
}

// TestFit_Errors walks the failure paths.
func TestFit_Errors(t *testing.T) {
	t.Parallel()

	if _, err := lpm.Fit(nil); !errors.Is(err, lpm.ErrNilDataset) {
		t.Fatalf("nil dataset: err = %v, want ErrNilDataset", err)
	}

	X := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 1, 2, 1, 3})
	if _, err := lpm.Fit(&lpm.Dataset{X: X, Y: []float64{1, 0}}); !errors.Is(err, sandwich.ErrDimensionMismatch) {
		t.Fatalf("short Y: err = %v, want ErrDimensionMismatch", err)
	}

	tiny := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	if _, err := lpm.Fit(&lpm.Dataset{X: tiny, Y: []float64{1, 0}}); !errors.Is(err, lpm.ErrTooFewRows) {
		t.Fatalf("n<=K: err = %v, want ErrTooFewRows", err)
	}

	// Duplicated column: X'X singular.
	dup := mat.NewDense(5, 3, []float64{
		1, 1, 0,
		1, 1, 1,
		1, 1, 2,
		1, 1, 3,
		1, 1, 4,
	})
	if _, err := lpm.Fit(&lpm.Dataset{X: dup, Y: []float64{0, 1, 0, 1, 1}}); !errors.Is(err, sandwich.ErrSingularMatrix) {
		t.Fatalf("duplicated column: err = %v, want ErrSingularMatrix", err)
	}
}
