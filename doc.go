// Package goholtwinters provides additive Holt-Winters (triple exponential
// smoothing) time series forecasting.
//
// GoHoltWinters decomposes a regularly-sampled series into level, trend, and
// seasonal components, fits those components with a single recursive pass over
// the data, and extrapolates them into future periods. It follows the additive
// formulation from "Forecasting: Principles and Practice".
//
// # Features
//
//   - Additive Holt-Winters models with configurable smoothing weights
//   - Harmonic-regression warm start for level, trend, and seasonal components
//   - One-step-ahead fitted values, residuals, and model summaries
//   - Classical additive decomposition for seasonality inspection
//   - Forecast accuracy metrics (RMSE, MAE, MAPE)
//   - Time series utilities and CSV loading
//
// # Quick Start
//
// Fit a Holt-Winters model and forecast:
//
//	series := timeseries.New(values)
//	model, _ := holtwinters.New(0.3, 0.1, 0.1, 12) // alpha, beta, gamma, season length
//	model.Fit(series)
//	forecasts, _ := model.Forecast(12)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - holtwinters: The additive Holt-Winters model
//   - stats: Harmonic regression, decomposition, and accuracy metrics
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Winters, P.R. (1960). Forecasting Sales by Exponentially Weighted Moving Averages
package goholtwinters
