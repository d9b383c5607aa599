// Package stats provides regression, decomposition, and accuracy metrics
// for time series analysis.
//
// # Harmonic Regression
//
// Estimate warm-start level, trend, and seasonal values for a seasonal series:
//
//	result, err := stats.HarmonicRegression(series, 12)
//	// result.Intercept, result.Slope, result.Seasonal
//
// The seasonal profile is re-centered to zero mean; CenterSeasonal exposes
// the same centering for standalone profiles.
//
// # Least Squares
//
// Solve a general ordinary least squares system:
//
//	coeffs, err := stats.OLS(design, target)
//
// # Decomposition
//
// Decompose a series into additive components:
//
//	decomp := stats.Decompose(series, 12)
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
//
// # Accuracy Metrics
//
// Compare forecasts against actuals:
//
//	rmse := stats.RMSE(actual, predicted)
//	mae := stats.MAE(actual, predicted)
//	mape := stats.MAPE(actual, predicted)
package stats
