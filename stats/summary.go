package stats

import "math"

// Summary holds every descriptive statistic of a sample.
type Summary struct {
	N                  int            `json:"n" yaml:"n"`
	Sum                float64        `json:"sum" yaml:"sum"`
	Mean               float64        `json:"mean" yaml:"mean"`
	Median             float64        `json:"median" yaml:"median"`
	StdDev             float64        `json:"std_dev" yaml:"std_dev"`
	Variance           float64        `json:"variance" yaml:"variance"`
	DistanceMeanMedian float64        `json:"distance_mean_median" yaml:"distance_mean_median"`
	Coverage           CoverageResult `json:"coverage" yaml:"coverage"`

	// Degenerate is set when every value is identical. Normality is then nil
	// and left out of encodings.
	Degenerate bool              `json:"degenerate" yaml:"degenerate"`
	Normality  *JarqueBeraResult `json:"normality,omitempty" yaml:"normality,omitempty"`
}

// Describe computes the full summary of a sample. An empty sample fails with
// ErrEmptyInput; a sample of identical values is reported as Degenerate
// instead of failing.
func Describe[T any](seq []T) (*Summary, error) {
	xs, err := float64s("describe", seq)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, emptyInput("describe")
	}

	m := mean(xs)
	med := median(xs)
	cm := momentsOf(xs)

	s := &Summary{
		N:                  len(xs),
		Sum:                sum(xs),
		Mean:               m,
		Median:             med,
		StdDev:             cm.stdDev(),
		Variance:           cm.variance(),
		DistanceMeanMedian: math.Abs(m - med),
		Coverage: CoverageResult{
			Within1Std: cm.within(xs, 1),
			Within2Std: cm.within(xs, 2),
			Within3Std: cm.within(xs, 3),
		},
	}

	jb, err := jarqueBera("describe", xs)
	if err != nil {
		// Only identical values can fail here.
		s.Degenerate = true
		return s, nil
	}
	s.Normality = jb

	return s, nil
}

// RejectNormality reports whether the summary's Jarque-Bera p-value rejects
// normality at significance level alpha. Degenerate samples are never rejected.
func (s *Summary) RejectNormality(alpha float64) bool {
	return s.Normality != nil && s.Normality.Reject(alpha)
}
