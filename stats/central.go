package stats

import (
	"math"
	"sort"
)

// Sum returns the total of all elements. The sum of an empty sample is 0.
func Sum[T any](seq []T) (float64, error) {
	xs, err := float64s("sum", seq)
	if err != nil {
		return 0, err
	}
	return sum(xs), nil
}

// Mean returns the arithmetic mean. The mean of an empty sample is 0 by
// convention rather than an error; no other function follows that rule.
func Mean[T any](seq []T) (float64, error) {
	xs, err := float64s("mean", seq)
	if err != nil {
		return 0, err
	}
	return mean(xs), nil
}

// Median returns the middle value of the sorted sample, or the mean of the
// two middle values when the count is even. The input is not modified.
func Median[T any](seq []T) (float64, error) {
	xs, err := float64s("median", seq)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, emptyInput("median")
	}
	return median(xs), nil
}

// accumulator is a compensated (Neumaier) running sum.
type accumulator struct {
	sum, comp float64
}

func (a *accumulator) add(x float64) {
	t := a.sum + x
	if math.Abs(a.sum) >= math.Abs(x) {
		a.comp += (a.sum - t) + x
	} else {
		a.comp += (x - t) + a.sum
	}
	a.sum = t
}

func (a *accumulator) value() float64 {
	if a.comp != 0 && !math.IsInf(a.comp, 0) && !math.IsNaN(a.comp) {
		return a.sum + a.comp
	}
	return a.sum
}

func sum(xs []float64) float64 {
	var acc accumulator
	for _, x := range xs {
		acc.add(x)
	}
	return acc.value()
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	n := float64(len(xs))
	if s := sum(xs); !math.IsInf(s, 0) {
		return s / n
	}
	// The total overflows; the mean of finite values never does.
	var acc accumulator
	for _, x := range xs {
		acc.add(x / n)
	}
	return acc.value()
}

func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return midpoint(sorted[n/2-1], sorted[n/2])
	}
	return sorted[n/2]
}

func midpoint(a, b float64) float64 {
	if m := (a + b) / 2; !math.IsInf(m, 0) {
		return m
	}
	return a/2 + b/2
}
