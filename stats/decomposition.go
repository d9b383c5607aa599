package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goholtwinters/timeseries"
)

// DecompositionResult represents the additive decomposition of a time series
// into trend, seasonal, and residual components (Y = T + S + R).
type DecompositionResult struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
}

// Decompose performs classical additive decomposition of a time series.
// The trend is a centered moving average, the seasonal component is the
// zero-mean average deviation per phase, and the residual is what remains.
// Trend and residual values are NaN near the edges where the centered
// average is undefined. Returns nil if the series is shorter than two cycles.
func Decompose(series *timeseries.Series, period int) *DecompositionResult {
	n := series.Len()
	if period < 2 || n < 2*period {
		return nil
	}

	trend := centeredMovingAverage(series.Values, period)

	detrended := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(trend[i]) {
			detrended[i] = math.NaN()
		} else {
			detrended[i] = series.Values[i] - trend[i]
		}
	}

	// Average the detrended values within each phase
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i := 0; i < n; i++ {
		if !math.IsNaN(detrended[i]) {
			pattern[i%period] += detrended[i]
			counts[i%period]++
		}
	}
	for i := 0; i < period; i++ {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
	}

	mean := stat.Mean(pattern, nil)
	seasonal := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = pattern[i%period] - mean
	}

	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(trend[i]) {
			residual[i] = math.NaN()
		} else {
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}
	}

	return &DecompositionResult{
		Original: series,
		Trend: &timeseries.Series{
			Values:     trend,
			Timestamps: series.Timestamps,
			Name:       "trend",
		},
		Seasonal: &timeseries.Series{
			Values:     seasonal,
			Timestamps: series.Timestamps,
			Name:       "seasonal",
		},
		Residual: &timeseries.Series{
			Values:     residual,
			Timestamps: series.Timestamps,
			Name:       "residual",
		},
		Period: period,
	}
}

// centeredMovingAverage computes a centered moving average of the given
// period. Even periods use a 2xperiod average with half weights at the ends.
func centeredMovingAverage(values []float64, period int) []float64 {
	n := len(values)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2

	if period%2 == 0 {
		for i := half; i < n-half; i++ {
			sum := values[i-half]*0.5 + values[i+half]*0.5
			for j := i - half + 1; j < i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
	} else {
		for i := half; i < n-half; i++ {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
	}

	return trend
}
