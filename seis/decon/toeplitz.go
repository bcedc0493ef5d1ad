package decon

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seistools/tracedsp/dsp/core"
)

// autocorrelation returns the one-sided autocorrelation sums
// r[k] = sum_i x[i]·x[i+k] for the first lags lags. Lags at or beyond
// the signal length are zero.
func autocorrelation(signal []float64, lags int) []float64 {
	r := make([]float64, lags)
	for k := 0; k < lags && k < len(signal); k++ {
		r[k] = vecmath.DotProduct(signal[:len(signal)-k], signal[k:])
	}
	return r
}

// solveToeplitz solves the symmetric Toeplitz system built from the
// autocorrelation lags r against rhs. Autocorrelation matrices are
// positive semidefinite, so the Cholesky factorization either succeeds
// or flags the degenerate case.
func solveToeplitz(r, rhs []float64) ([]float64, error) {
	n := len(r)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, r[j-i])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: decon: autocorrelation matrix is not positive definite", core.ErrComputation)
	}

	sol := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(sol, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: decon: toeplitz solve: %v", core.ErrComputation, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = sol.AtVec(i)
	}
	return out, nil
}
