package stats

import (
	"math"
	"testing"
)

func TestMetrics(t *testing.T) {
	actual := []float64{1, 2, 3}
	predicted := []float64{2, 2, 5}

	if got := MAE(actual, predicted); math.Abs(got-1.0) > 1e-10 {
		t.Errorf("MAE = %f, want 1.0", got)
	}

	wantMSE := 5.0 / 3.0
	if got := MSE(actual, predicted); math.Abs(got-wantMSE) > 1e-10 {
		t.Errorf("MSE = %f, want %f", got, wantMSE)
	}
	if got := RMSE(actual, predicted); math.Abs(got-math.Sqrt(wantMSE)) > 1e-10 {
		t.Errorf("RMSE = %f, want %f", got, math.Sqrt(wantMSE))
	}

	wantMAPE := (100.0 + 0 + 200.0/3.0) / 3.0
	if got := MAPE(actual, predicted); math.Abs(got-wantMAPE) > 1e-10 {
		t.Errorf("MAPE = %f, want %f", got, wantMAPE)
	}
}

func TestMetricsPerfectForecast(t *testing.T) {
	values := []float64{5, 10, 15, 20}

	if got := RMSE(values, values); got != 0 {
		t.Errorf("RMSE of perfect forecast = %f, want 0", got)
	}
	if got := MAE(values, values); got != 0 {
		t.Errorf("MAE of perfect forecast = %f, want 0", got)
	}
	if got := MAPE(values, values); got != 0 {
		t.Errorf("MAPE of perfect forecast = %f, want 0", got)
	}
}

func TestMetricsLengthMismatch(t *testing.T) {
	// Comparison runs over the shorter slice
	actual := []float64{1, 2, 3, 100}
	predicted := []float64{1, 2, 3}

	if got := MAE(actual, predicted); got != 0 {
		t.Errorf("MAE over common prefix = %f, want 0", got)
	}
}

func TestMetricsEmpty(t *testing.T) {
	if got := MSE(nil, nil); got != 0 {
		t.Errorf("MSE of empty input = %f, want 0", got)
	}
	if got := MAE([]float64{}, []float64{1}); got != 0 {
		t.Errorf("MAE of empty overlap = %f, want 0", got)
	}
}

func TestMAPESkipsZeroActuals(t *testing.T) {
	actual := []float64{0, 10}
	predicted := []float64{5, 11}

	// Only the second pair contributes a percentage
	want := (10.0) / 2.0
	if got := MAPE(actual, predicted); math.Abs(got-want) > 1e-10 {
		t.Errorf("MAPE = %f, want %f", got, want)
	}
}
