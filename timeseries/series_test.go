package timeseries

import (
	"errors"
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
	if s.HasTimestamps() {
		t.Error("New should not assign timestamps")
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestNewDaily(t *testing.T) {
	start := time.Date(1909, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewDaily(start, []float64{3, 1, 4, 1, 5})

	if !s.HasTimestamps() {
		t.Fatal("NewDaily should assign timestamps")
	}
	if got := s.Timestamps[4]; !got.Equal(time.Date(1909, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 1909-01-05 for the last day, got %v", got)
	}
	if s.Days() != 5 {
		t.Errorf("Expected 5 days, got %d", s.Days())
	}
}

func TestNewWithTimestamps(t *testing.T) {
	_, err := NewWithTimestamps(make([]time.Time, 2), []float64{1})
	if err == nil {
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

func TestDescribe(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	s.Name = "letters"

	summary, err := s.Describe()
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	// Population standard deviation
	if math.Abs(summary.StdDev-2.0) > 1e-12 {
		t.Errorf("Expected std 2, got %f", summary.StdDev)
	}

	if _, err := New(nil).Describe(); err == nil {
		t.Error("Expected error for empty series")
	}
}

func TestSlice(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewDaily(start, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	sliced := s.Slice(2, 5)
	if sliced.Len() != 3 {
		t.Errorf("Expected length 3, got %d", sliced.Len())
	}
	expected := []float64{3, 4, 5}
	for i, v := range expected {
		if sliced.Values[i] != v {
			t.Errorf("At index %d: expected %f, got %f", i, v, sliced.Values[i])
		}
	}
	if !sliced.Timestamps[0].Equal(start.AddDate(0, 0, 2)) {
		t.Errorf("Slice should keep timestamps, got %v", sliced.Timestamps[0])
	}

	if s.Slice(5, 2).Len() != 0 {
		t.Error("Inverted slice should be empty")
	}
}

func TestBetween(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewDaily(start, []float64{1, 2, 3, 4, 5, 6, 7})

	week := s.Between(start.AddDate(0, 0, 1), start.AddDate(0, 0, 3))
	if week.Len() != 3 || week.Values[0] != 2 || week.Values[2] != 4 {
		t.Errorf("Unexpected window: %v", week.Values)
	}

	if New([]float64{1}).Between(start, start).Len() != 0 {
		t.Error("Series without timestamps should yield an empty window")
	}
}

func TestCopy(t *testing.T) {
	original := New([]float64{1, 2, 3})
	copied := original.Copy()

	copied.Values[0] = 100

	if original.Values[0] == 100 {
		t.Error("Copy should not affect original")
	}
}

func TestFrequencies(t *testing.T) {
	s := New([]float64{0, 3, 1, 3, 3, 5})
	freq, err := s.Frequencies()
	if err != nil {
		t.Fatalf("Frequencies failed: %v", err)
	}

	expected := []int{1, 1, 0, 3, 0, 1}
	if len(freq) != len(expected) {
		t.Fatalf("Expected %d bins, got %d", len(expected), len(freq))
	}
	for i, want := range expected {
		if freq[i] != want {
			t.Errorf("Bin %d: expected %d, got %d", i, want, freq[i])
		}
	}
}

func TestFrequenciesRejectsLargeValues(t *testing.T) {
	s := New([]float64{1, 2, 1e18})
	if _, err := s.Frequencies(); !errors.Is(err, ErrNotCountData) {
		t.Errorf("Expected ErrNotCountData, got %v", err)
	}

	s = New([]float64{0, MaxFrequencyValue})
	freq, err := s.Frequencies()
	if err != nil {
		t.Fatalf("Frequencies failed: %v", err)
	}
	if len(freq) != MaxFrequencyValue+1 || freq[MaxFrequencyValue] != 1 {
		t.Errorf("Expected %d bins with the last one set", MaxFrequencyValue+1)
	}
}
