// Package holtwinters implements additive Holt-Winters (triple exponential smoothing) models.
package holtwinters

import (
	"github.com/pkg/errors"

	"github.com/sartorproj/goholtwinters/stats"
	"github.com/sartorproj/goholtwinters/timeseries"
)

// Model represents an additive Holt-Winters model.
//
// A model starts unfit, holding only its smoothing weights and season length.
// Fit transitions it to the fitted state exactly once; the fitted component
// history is assembled in full before it becomes observable and is never
// mutated afterwards. Fit must not be called concurrently with itself on the
// same model, but once Fit has returned, Forecast and all state accessors are
// safe for concurrent use.
type Model struct {
	Alpha        float64 // Level smoothing weight (0-1)
	Beta         float64 // Trend smoothing weight (0-1)
	Gamma        float64 // Seasonal smoothing weight (0-1)
	SeasonLength int     // Observations per season

	state *state
}

// state holds the complete fitted component history, aligned index-for-index
// with the observation series.
type state struct {
	level     []float64
	trend     []float64
	seasonal  []float64
	fitted    []float64
	residuals []float64
	n         int
}

// New creates a new additive Holt-Winters model.
//
// alpha, beta, and gamma are the level, trend, and seasonal smoothing weights,
// each in [0,1]: a weight of 1 trusts only the newest observation, a weight of
// 0 trusts only history. seasonLength is the number of observations per
// season; a season length of 1 configures a non-seasonal model.
func New(alpha, beta, gamma float64, seasonLength int) (*Model, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "level weight %v outside [0,1]", alpha)
	}
	if beta < 0 || beta > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "trend weight %v outside [0,1]", beta)
	}
	if gamma < 0 || gamma > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "seasonal weight %v outside [0,1]", gamma)
	}
	if seasonLength < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "season length must be at least 1, got %d", seasonLength)
	}

	return &Model{
		Alpha:        alpha,
		Beta:         beta,
		Gamma:        gamma,
		SeasonLength: seasonLength,
	}, nil
}

// Fit fits the model to the given time series data.
//
// The series must contain at least 4 observations (the harmonic warm start
// estimates 4 parameters) and at least one full season; two or more seasons
// give the seasonal estimates room to converge. Fitting an already fitted
// model returns ErrAlreadyFitted and leaves the existing state untouched.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.state != nil {
		return errors.Wrap(ErrAlreadyFitted, "fit")
	}

	n := series.Len()
	if n < 4 {
		return errors.Wrapf(ErrInsufficientData, "series has %d points, need at least 4", n)
	}
	if n < m.SeasonLength {
		return errors.Wrapf(ErrInsufficientData,
			"series has %d points, need one full season of %d", n, m.SeasonLength)
	}

	init, err := stats.HarmonicRegression(series, m.SeasonLength)
	if err != nil {
		return errors.Wrap(err, "initialize components")
	}

	y := series.Values
	sl := m.SeasonLength
	seasonal := sl > 1

	level := make([]float64, n)
	trend := make([]float64, n)
	season := make([]float64, n)

	level[0] = init.Intercept
	trend[0] = init.Slope
	if seasonal {
		copy(season[:sl], init.Seasonal)
	}

	// Bootstrap through the first season: the level is pinned to the raw
	// observation, the trend carries forward, and the seasonal values keep
	// their warm-start profile. The trend recurrence differences level(t-2),
	// so the bootstrap always spans at least two steps.
	boot := sl
	if boot < 2 {
		boot = 2
	}
	for t := 1; t < boot && t < n; t++ {
		level[t] = y[t]
		trend[t] = trend[t-1]
	}

	for t := boot; t < n; t++ {
		if seasonal {
			level[t] = m.Alpha*(y[t]-season[t-sl]) + (1-m.Alpha)*(level[t-1]+trend[t-1])
			trend[t] = m.Beta*(level[t]-level[t-2]) + (1-m.Beta)*trend[t-1]
			season[t] = m.Gamma*(y[t]-level[t-1]-trend[t-1]) + (1-m.Gamma)*season[t-sl]
		} else {
			level[t] = m.Alpha*y[t] + (1-m.Alpha)*(level[t-1]+trend[t-1])
			trend[t] = m.Beta*(level[t]-level[t-2]) + (1-m.Beta)*trend[t-1]
		}
	}

	// One-step-ahead fitted values; the bootstrap range predicts the
	// observation itself since the level is pinned to it there.
	fitted := make([]float64, n)
	copy(fitted, y)
	for t := boot; t < n; t++ {
		f := level[t-1] + trend[t-1]
		if seasonal {
			f += season[t-sl]
		}
		fitted[t] = f
	}

	residuals := make([]float64, n)
	for t := 0; t < n; t++ {
		residuals[t] = y[t] - fitted[t]
	}

	m.state = &state{
		level:     level,
		trend:     trend,
		seasonal:  season,
		fitted:    fitted,
		residuals: residuals,
		n:         n,
	}
	return nil
}

// Forecast generates forecasts for the specified number of steps ahead.
//
// Level and trend extrapolate linearly from their final fitted values; the
// seasonal term replays the most recently completed cycle, repeating it
// unchanged for horizons beyond one season.
func (m *Model) Forecast(horizon int) ([]float64, error) {
	st := m.state
	if st == nil {
		return nil, errors.Wrap(ErrNotFitted, "forecast")
	}
	if horizon < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "horizon must be at least 1, got %d", horizon)
	}

	lastLevel := st.level[st.n-1]
	lastTrend := st.trend[st.n-1]

	forecasts := make([]float64, horizon)
	for h := 1; h <= horizon; h++ {
		f := lastLevel + float64(h)*lastTrend
		if m.SeasonLength > 1 {
			f += st.seasonal[seasonalIndex(st.n, m.SeasonLength, h)]
		}
		forecasts[h-1] = f
	}
	return forecasts, nil
}

// seasonalIndex selects the seasonal value for forecast step h from the most
// recently completed cycle [n-m, n-1]. Steps wrap modulo m, so horizons
// beyond one season reuse the same stored cycle.
func seasonalIndex(n, m, h int) int {
	return n - m + h%m
}

// IsFitted returns true once the model has been fitted.
func (m *Model) IsFitted() bool {
	return m.state != nil
}

// Level returns the fitted level history. Returns nil if the model is unfit.
func (m *Model) Level() []float64 {
	if m.state == nil {
		return nil
	}
	return copyFloats(m.state.level)
}

// Trend returns the fitted trend history. Returns nil if the model is unfit.
func (m *Model) Trend() []float64 {
	if m.state == nil {
		return nil
	}
	return copyFloats(m.state.trend)
}

// Seasonal returns the fitted seasonal history. The full history is retained,
// not just the final cycle. Returns nil if the model is unfit.
func (m *Model) Seasonal() []float64 {
	if m.state == nil {
		return nil
	}
	return copyFloats(m.state.seasonal)
}

// FittedValues returns the one-step-ahead fitted values.
func (m *Model) FittedValues() []float64 {
	if m.state == nil {
		return nil
	}
	return copyFloats(m.state.fitted)
}

// Residuals returns the one-step-ahead residuals.
func (m *Model) Residuals() []float64 {
	if m.state == nil {
		return nil
	}
	return copyFloats(m.state.residuals)
}

// Summary describes a fitted model: its configuration, final smoothed
// components, and in-sample accuracy.
type Summary struct {
	Alpha        float64
	Beta         float64
	Gamma        float64
	SeasonLength int
	NObs         int
	Level        float64 // Final level
	Trend        float64 // Final trend
	MSE          float64 // In-sample one-step-ahead, past the bootstrap
	RMSE         float64
	MAE          float64
}

// Summary returns a summary of the fitted model, or nil if the model is unfit.
func (m *Model) Summary() *Summary {
	st := m.state
	if st == nil {
		return nil
	}

	boot := m.SeasonLength
	if boot < 2 {
		boot = 2
	}
	var actual, predicted []float64
	if boot < st.n {
		actual = make([]float64, st.n-boot)
		for t := boot; t < st.n; t++ {
			actual[t-boot] = st.fitted[t] + st.residuals[t]
		}
		predicted = st.fitted[boot:]
	}

	return &Summary{
		Alpha:        m.Alpha,
		Beta:         m.Beta,
		Gamma:        m.Gamma,
		SeasonLength: m.SeasonLength,
		NObs:         st.n,
		Level:        st.level[st.n-1],
		Trend:        st.trend[st.n-1],
		MSE:          stats.MSE(actual, predicted),
		RMSE:         stats.RMSE(actual, predicted),
		MAE:          stats.MAE(actual, predicted),
	}
}

func copyFloats(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
