package stats

import "math"

// MSE calculates the mean squared error between actual and predicted values.
// The comparison runs over the shorter of the two slices.
func MSE(actual, predicted []float64) float64 {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(n)
}

// RMSE calculates the root mean squared error between actual and predicted values.
func RMSE(actual, predicted []float64) float64 {
	return math.Sqrt(MSE(actual, predicted))
}

// MAE calculates the mean absolute error between actual and predicted values.
func MAE(actual, predicted []float64) float64 {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(n)
}

// MAPE calculates the mean absolute percentage error between actual and
// predicted values. Zero actuals are skipped in the percentage sum.
func MAPE(actual, predicted []float64) float64 {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		if actual[i] != 0 {
			sum += math.Abs(actual[i]-predicted[i]) / math.Abs(actual[i]) * 100
		}
	}
	return sum / float64(n)
}
