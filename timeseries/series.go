package timeseries

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/gonormal/stats"
)

// Day is the step between consecutive observations of a daily series.
const Day = 24 * time.Hour

// Series represents an ordered sequence of observations with optional timestamps.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values without timestamps.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewDaily creates a series with one observation per calendar day starting at start.
func NewDaily(start time.Time, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.AddDate(0, 0, i)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.Newf("timestamps and values must have the same length: %d != %d",
			len(timestamps), len(values))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// HasTimestamps reports whether every observation carries a timestamp.
func (s *Series) HasTimestamps() bool {
	return len(s.Timestamps) == len(s.Values) && len(s.Values) > 0
}

// Days returns the number of calendar days covered by NewDaily-style
// timestamps, or 0 for a series without timestamps.
func (s *Series) Days() int {
	if !s.HasTimestamps() {
		return 0
	}
	first, last := s.Timestamps[0], s.Timestamps[len(s.Timestamps)-1]
	return int(last.Sub(first)/Day) + 1
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	var timestamps []time.Time
	if len(s.Timestamps) >= end {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Between returns the observations with timestamps in [from, to].
func (s *Series) Between(from, to time.Time) *Series {
	out := &Series{Name: s.Name, Values: []float64{}}
	if !s.HasTimestamps() {
		return out
	}
	for i, ts := range s.Timestamps {
		if ts.Before(from) || ts.After(to) {
			continue
		}
		out.Timestamps = append(out.Timestamps, ts)
		out.Values = append(out.Values, s.Values[i])
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	var timestamps []time.Time
	if s.Timestamps != nil {
		timestamps = make([]time.Time, len(s.Timestamps))
		copy(timestamps, s.Timestamps)
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Mean returns the arithmetic mean of the values, 0 for an empty series.
func (s *Series) Mean() float64 {
	m, _ := stats.Mean(s.Values)
	return m
}

// Describe returns the descriptive statistics of the values.
func (s *Series) Describe() (*stats.Summary, error) {
	summary, err := stats.Describe(s.Values)
	if err != nil {
		return nil, errors.Wrapf(err, "series %q", s.Name)
	}
	return summary, nil
}

// MaxFrequencyValue is the largest value Frequencies accepts.
const MaxFrequencyValue = 1 << 16

// ErrNotCountData is returned by Frequencies for values that cannot be tallied.
var ErrNotCountData = errors.New("not count data")

// Frequencies counts how often each integer value occurs. Values are
// truncated toward zero; the result has one entry per value from 0 to the
// maximum, so it suits non-negative count data such as daily tallies.
// Values above MaxFrequencyValue fail with ErrNotCountData.
func (s *Series) Frequencies() ([]int, error) {
	maxValue := 0
	for i, v := range s.Values {
		if !(v <= MaxFrequencyValue) {
			return nil, errors.Wrapf(ErrNotCountData, "value %v at index %d exceeds %d", v, i, MaxFrequencyValue)
		}
		if int(v) > maxValue {
			maxValue = int(v)
		}
	}
	freq := make([]int, maxValue+1)
	for _, v := range s.Values {
		if v >= 0 {
			freq[int(v)]++
		}
	}
	return freq, nil
}
