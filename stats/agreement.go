package stats

import "math"

// DistanceMeanMedian returns |mean - median|, a symmetry diagnostic that is 0
// for a perfectly symmetric sample. An empty sample fails like Median does.
func DistanceMeanMedian[T any](seq []T) (float64, error) {
	xs, err := float64s("distance mean-median", seq)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, emptyInput("distance mean-median")
	}
	return math.Abs(mean(xs) - median(xs)), nil
}
