package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)}
	values := []float64{10, 20, 30}

	s, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		t.Fatalf("NewWithTimestamps failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}

	if _, err := NewWithTimestamps(timestamps, []float64{1}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}

	if got := New([]float64{3}).Variance(); got != 0 {
		t.Errorf("Expected variance 0 for single value, got %f", got)
	}
}

func TestStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.Std()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})

	if s.Min() != 1 {
		t.Errorf("Expected min 1, got %f", s.Min())
	}
	if s.Max() != 9 {
		t.Errorf("Expected max 9, got %f", s.Max())
	}

	empty := New([]float64{})
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) {
		t.Error("Expected NaN min/max for empty series")
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	sub := s.Slice(2, 5)
	if sub.Len() != 3 {
		t.Errorf("Expected length 3, got %d", sub.Len())
	}
	for i, want := range []float64{2, 3, 4} {
		if sub.Values[i] != want {
			t.Errorf("Expected value %f at index %d, got %f", want, i, sub.Values[i])
		}
	}

	// Out-of-range bounds are clamped
	clamped := s.Slice(-5, 100)
	if clamped.Len() != 10 {
		t.Errorf("Expected clamped length 10, got %d", clamped.Len())
	}

	if s.Slice(5, 5).Len() != 0 {
		t.Error("Expected empty series for start >= end")
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	s.Name = "original"

	clone := s.Copy()
	clone.Values[0] = 100

	if s.Values[0] != 1 {
		t.Error("Copy should not share underlying values")
	}
	if clone.Name != "original" {
		t.Errorf("Expected copied name, got %q", clone.Name)
	}
}

func TestMovingAverage(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	ma := s.MovingAverage(3)
	expected := []float64{2, 3, 4}

	if ma.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), ma.Len())
	}
	for i, want := range expected {
		if math.Abs(ma.Values[i]-want) > 1e-10 {
			t.Errorf("Expected value %f at index %d, got %f", want, i, ma.Values[i])
		}
	}

	if s.MovingAverage(0).Len() != 0 {
		t.Error("Expected empty series for non-positive window")
	}
	if s.MovingAverage(6).Len() != 0 {
		t.Error("Expected empty series for window larger than series")
	}
}
