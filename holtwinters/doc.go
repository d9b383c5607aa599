// Package holtwinters implements additive Holt-Winters (triple exponential
// smoothing) models for seasonal time series.
//
// The model decomposes a series into three components, each updated by a
// convex blend of a new estimate against its own history:
//
//	level(t)  = α·(y(t) − season(t−m)) + (1−α)·(level(t−1) + trend(t−1))
//	trend(t)  = β·(level(t) − level(t−2)) + (1−β)·trend(t−1)
//	season(t) = γ·(y(t) − level(t−1) − trend(t−1)) + (1−γ)·season(t−m)
//
// Initial values come from a harmonic regression over the whole series
// (see stats.HarmonicRegression), and the recursion bootstraps through the
// first season before the blends take over.
//
// # Basic Usage
//
// Create, fit, and forecast:
//
//	// Quarterly data: season length 4
//	model, err := holtwinters.New(0.3, 0.1, 0.1, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Forecast the next two years
//	forecasts, _ := model.Forecast(8)
//
// # Errors
//
// Failures are reported through sentinel errors matched with errors.Is:
//
//	err := model.Fit(series)
//	if errors.Is(err, holtwinters.ErrInsufficientData) {
//	    // series too short for the configured season length
//	}
//
// # Model Inspection
//
// After fitting, the complete component histories are available:
//
//	level := model.Level()
//	seasonal := model.Seasonal()
//	residuals := model.Residuals()
//
//	summary := model.Summary()
//	fmt.Printf("RMSE: %.2f, final trend: %.2f\n", summary.RMSE, summary.Trend)
//
// A fitted model is immutable: Forecast and the accessors are pure functions
// of the fitted state and are safe for concurrent use.
package holtwinters
