// Package stats provides regression, decomposition, and accuracy metrics for time series.
package stats

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// OLS solves the ordinary least squares problem design·coeffs ≈ target and
// returns the coefficient vector. The system must have at least as many
// observations (rows) as parameters (columns).
func OLS(design *mat.Dense, target []float64) ([]float64, error) {
	rows, cols := design.Dims()
	if rows != len(target) {
		return nil, errors.Errorf("design matrix has %d rows but target has %d values", rows, len(target))
	}
	if rows < cols {
		return nil, errors.Errorf("under-determined system: %d observations for %d parameters", rows, cols)
	}

	b := mat.NewVecDense(len(target), target)

	var sol mat.Dense
	if err := sol.Solve(design, b); err != nil {
		return nil, errors.Wrap(err, "least squares solve")
	}

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = sol.At(i, 0)
	}
	return coeffs, nil
}
