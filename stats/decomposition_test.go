package stats

import (
	"math"
	"testing"

	"github.com/sartorproj/goholtwinters/timeseries"
)

func TestDecompose(t *testing.T) {
	// Data with trend and seasonality
	n := 120 // 10 years of monthly data
	period := 12
	values := make([]float64, n)

	for i := 0; i < n; i++ {
		trend := float64(i) * 0.5
		seasonal := 10 * math.Sin(2*math.Pi*float64(i%period)/float64(period))
		noise := float64(i%5-2) / 5
		values[i] = trend + seasonal + noise
	}

	series := timeseries.New(values)
	result := Decompose(series, period)

	if result == nil {
		t.Fatal("Decompose returned nil")
	}

	if result.Trend.Len() != n {
		t.Errorf("Trend length mismatch: expected %d, got %d", n, result.Trend.Len())
	}
	if result.Seasonal.Len() != n {
		t.Errorf("Seasonal length mismatch: expected %d, got %d", n, result.Seasonal.Len())
	}
	if result.Residual.Len() != n {
		t.Errorf("Residual length mismatch: expected %d, got %d", n, result.Residual.Len())
	}

	// Components sum back to the original away from the NaN edges
	for i := period; i < n-period; i++ {
		reconstructed := result.Trend.Values[i] + result.Seasonal.Values[i] + result.Residual.Values[i]
		if !math.IsNaN(reconstructed) && math.Abs(reconstructed-values[i]) > 1.0 {
			t.Errorf("Reconstruction error at index %d: original=%f, reconstructed=%f",
				i, values[i], reconstructed)
		}
	}

	// Seasonal component has zero mean over one cycle
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += result.Seasonal.Values[i]
	}
	if mean := sum / float64(period); math.Abs(mean) > 1e-9 {
		t.Errorf("Seasonal cycle mean = %g, want ~0", mean)
	}
}

func TestDecomposeOddPeriod(t *testing.T) {
	n, period := 70, 7
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(i)*0.3 + 5*math.Cos(2*math.Pi*float64(i)/float64(period))
	}

	result := Decompose(timeseries.New(values), period)
	if result == nil {
		t.Fatal("Decompose returned nil")
	}

	// The mid-section trend should approximate the linear component
	for i := period; i < n-period; i++ {
		if math.Abs(result.Trend.Values[i]-float64(i)*0.3) > 1.0 {
			t.Errorf("Trend[%d] = %f, want ~%f", i, result.Trend.Values[i], float64(i)*0.3)
		}
	}
}

func TestDecomposeTooShort(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4, 5})
	if result := Decompose(series, 4); result != nil {
		t.Error("Expected nil for series shorter than two cycles")
	}
}

func TestDecomposeInvalidPeriod(t *testing.T) {
	series := timeseries.New(make([]float64, 40))
	if result := Decompose(series, 1); result != nil {
		t.Error("Expected nil for period below 2")
	}
}
