package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goholtwinters/timeseries"
)

// HarmonicResult holds warm-start estimates produced by harmonic regression.
type HarmonicResult struct {
	Intercept float64   // Initial level
	Slope     float64   // Initial per-step trend
	Cos       float64   // First-harmonic cosine coefficient
	Sin       float64   // First-harmonic sine coefficient
	Seasonal  []float64 // Zero-mean seasonal profile, one entry per phase 0..period-1
}

// HarmonicRegression fits y_t ≈ L + B·t + A·cos(2πt/period) + C·sin(2πt/period)
// by ordinary least squares over the whole series. The intercept and slope are
// level and trend estimates; the seasonal profile is the first harmonic
// evaluated at each phase, re-centered so that its mean over one cycle is zero.
//
// With period < 2 the harmonic columns are omitted and a plain linear fit is
// returned with a nil seasonal profile.
func HarmonicRegression(series *timeseries.Series, period int) (*HarmonicResult, error) {
	n := series.Len()

	if period < 2 {
		if n < 2 {
			return nil, errors.Errorf("need at least 2 observations for a linear fit, got %d", n)
		}
		design := mat.NewDense(n, 2, nil)
		for t := 0; t < n; t++ {
			design.Set(t, 0, 1)
			design.Set(t, 1, float64(t))
		}
		coeffs, err := OLS(design, series.Values)
		if err != nil {
			return nil, errors.Wrap(err, "linear fit")
		}
		return &HarmonicResult{Intercept: coeffs[0], Slope: coeffs[1]}, nil
	}

	if n < 4 {
		return nil, errors.Errorf("need at least 4 observations for harmonic regression, got %d", n)
	}

	omega := 2 * math.Pi / float64(period)
	design := mat.NewDense(n, 4, nil)
	for t := 0; t < n; t++ {
		design.Set(t, 0, 1)
		design.Set(t, 1, float64(t))
		design.Set(t, 2, math.Cos(omega*float64(t)))
		design.Set(t, 3, math.Sin(omega*float64(t)))
	}

	coeffs, err := OLS(design, series.Values)
	if err != nil {
		return nil, errors.Wrap(err, "harmonic fit")
	}

	result := &HarmonicResult{
		Intercept: coeffs[0],
		Slope:     coeffs[1],
		Cos:       coeffs[2],
		Sin:       coeffs[3],
	}

	profile := make([]float64, period)
	for i := 0; i < period; i++ {
		profile[i] = result.Cos*math.Cos(omega*float64(i)) + result.Sin*math.Sin(omega*float64(i))
	}
	result.Seasonal = CenterSeasonal(profile)

	return result, nil
}

// CenterSeasonal returns a copy of the seasonal profile shifted so that its
// mean is zero. An additive profile must not bias the overall level.
func CenterSeasonal(profile []float64) []float64 {
	centered := make([]float64, len(profile))
	if len(profile) == 0 {
		return centered
	}
	mean := stat.Mean(profile, nil)
	for i, v := range profile {
		centered[i] = v - mean
	}
	return centered
}
