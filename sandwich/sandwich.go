// SPDX-License-Identifier: MIT

package sandwich

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMiddle       = "Middle"
	opSandwich     = "Sandwich"
	opCrossProduct = "CrossProduct"
	opStdErrors    = "StdErrors"
)

// wrapErr wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil; wrapping a nil cause produces a bogus error.
func wrapErr(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validate performs the shared fail-fast checks for all entry points and
// returns the design-matrix dimensions on success.
//
// Errors:
//   - ErrEmptyInput         — n == 0 or K == 0.
//   - ErrDimensionMismatch  — len(residuals) != n.
func validate(X *mat.Dense, residuals []float64) (n, k int, err error) {
	n, k = X.Dims()
	if n == 0 || k == 0 {
		return 0, 0, ErrEmptyInput
	}
	if len(residuals) != n {
		return 0, 0, fmt.Errorf("%w: X has %d rows, residuals has length %d",
			ErrDimensionMismatch, n, len(residuals))
	}
	return n, k, nil
}

// Middle computes the sandwich middle term
//
//	M = (1/n)·Σᵢ eᵢ²·xᵢxᵢᵀ  =  (1/n)·X'·diag(e²)·X
//
// using the requested strategy. All strategies return the same K×K matrix up
// to floating-point rounding; they differ only in computational approach
// (see Strategy). The result is symmetric and inputs are never mutated.
//
// Errors:
//   - ErrEmptyInput, ErrDimensionMismatch — invalid shapes.
//   - ErrUnknownStrategy                  — strategy outside the closed set.
func Middle(X *mat.Dense, residuals []float64, strategy Strategy) (*mat.Dense, error) {
	n, k, err := validate(X, residuals)
	if err != nil {
		return nil, wrapErr(opMiddle, err)
	}

	switch strategy {
	case ElementwiseAccumulation:
		return middleElementwise(X, residuals, n, k), nil
	case DenseWeightedProduct:
		return middleDense(X, residuals, n, k), nil
	case SparseWeightedProduct:
		return middleSparse(X, residuals, n, k), nil
	case ScaledCrossProduct:
		return middleScaled(X, residuals, n, k), nil
	default:
		return nil, wrapErr(opMiddle, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy))
	}
}

// middleElementwise accumulates eᵢ²·xᵢxᵢᵀ row by row.
//
// The K×K outer-product temporary is allocated fresh on every iteration.
// That churn is the point: this kernel is the honest baseline whose
// per-iteration overhead the other strategies amortize away.
func middleElementwise(X *mat.Dense, residuals []float64, n, k int) *mat.Dense {
	M := mat.NewDense(k, k, nil)
	for i := 0; i < n; i++ {
		xi := X.RowView(i)
		outer := mat.NewDense(k, k, nil)
		outer.Outer(residuals[i]*residuals[i], xi, xi)
		M.Add(M, outer)
	}
	M.Scale(1/float64(n), M)

	return M
}

// middleDense materializes the full n×n diag(e²) and multiplies through it.
// Deliberately wasteful — O(n²) zeros are stored and multiplied — to serve
// as the dense-weighting reference point in benchmarks.
func middleDense(X *mat.Dense, residuals []float64, n, k int) *mat.Dense {
	D := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		D.Set(i, i, residuals[i]*residuals[i])
	}

	var xtd, M mat.Dense
	xtd.Mul(X.T(), D)
	M.Mul(&xtd, X)
	M.Scale(1/float64(n), &M)

	return &M
}

// middleSparse stores diag(e²) as a diagonal matrix (n nonzeros) and relies
// on gonum's diagonal-aware multiply. Same math as middleDense, O(n) memory
// for D instead of O(n²).
func middleSparse(X *mat.Dense, residuals []float64, n, k int) *mat.Dense {
	weights := make([]float64, n)
	for i, e := range residuals {
		weights[i] = e * e
	}
	D := mat.NewDiagDense(n, weights)

	var xtd, M mat.Dense
	xtd.Mul(X.T(), D)
	M.Mul(&xtd, X)
	M.Scale(1/float64(n), &M)

	return &M
}

// middleScaled scales row i of X by eᵢ and computes Xe'·Xe. Mathematically
// identical to the others since (eᵢxᵢ)(eᵢxᵢ)ᵀ = eᵢ²·xᵢxᵢᵀ, but it builds no
// n×n structure and no per-row temporaries — one allocation, one GEMM.
func middleScaled(X *mat.Dense, residuals []float64, n, k int) *mat.Dense {
	Xe := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		src := X.RawRowView(i)
		dst := Xe.RawRowView(i)
		for j, v := range src {
			dst[j] = v * residuals[i]
		}
	}

	var M mat.Dense
	M.Mul(Xe.T(), Xe)
	M.Scale(1/float64(n), &M)

	return &M
}

// CrossProduct returns X'X as a fresh K×K matrix.
//
// Errors:
//   - ErrEmptyInput — n == 0 or K == 0.
func CrossProduct(X *mat.Dense) (*mat.Dense, error) {
	n, k := X.Dims()
	if n == 0 || k == 0 {
		return nil, wrapErr(opCrossProduct, ErrEmptyInput)
	}

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	return &xtx, nil
}

// Sandwich combines the middle term with (X'X)⁻¹ into the full robust
// covariance estimate
//
//	V = (X'X)⁻¹ · M · (X'X)⁻¹
//
// with M as returned by Middle under the given strategy.
//
// Errors:
//   - everything Middle returns, plus
//   - ErrSingularMatrix — X'X is not invertible (duplicated or zero column,
//     or n < K). The singularity is detected at the inverse step, never
//     inside Middle.
func Sandwich(X *mat.Dense, residuals []float64, strategy Strategy) (*mat.Dense, error) {
	M, err := Middle(X, residuals, strategy)
	if err != nil {
		return nil, wrapErr(opSandwich, err)
	}

	xtx, err := CrossProduct(X)
	if err != nil {
		return nil, wrapErr(opSandwich, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(xtx); err != nil {
		return nil, wrapErr(opSandwich, fmt.Errorf("%w: %v", ErrSingularMatrix, err))
	}

	var tmp, V mat.Dense
	tmp.Mul(&inv, M)
	V.Mul(&tmp, &inv)

	return &V, nil
}

// StdErrors returns the conventional HC0 robust standard error for each of
// the K coefficients: sqrt of the diagonal of n·Sandwich. The rescaling by n
// undoes the 1/n normalization inside Middle, recovering
// (X'X)⁻¹·(Σ eᵢ²xᵢxᵢᵀ)·(X'X)⁻¹.
//
// Errors: same as Sandwich.
func StdErrors(X *mat.Dense, residuals []float64, strategy Strategy) ([]float64, error) {
	V, err := Sandwich(X, residuals, strategy)
	if err != nil {
		return nil, wrapErr(opStdErrors, err)
	}

	n, k := X.Dims()
	se := make([]float64, k)
	for j := 0; j < k; j++ {
		se[j] = math.Sqrt(float64(n) * V.At(j, j))
	}

	return se, nil
}
