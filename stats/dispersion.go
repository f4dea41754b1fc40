package stats

import "math"

// StdDev returns the population standard deviation, using divisor n rather
// than n-1. Shape and coverage statistics are defined on the same convention.
func StdDev[T any](seq []T) (float64, error) {
	xs, err := float64s("std dev", seq)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, emptyInput("std dev")
	}
	return momentsOf(xs).stdDev(), nil
}

// Variance returns the population variance, the second central moment. It
// overflows to +Inf only when the true variance exceeds math.MaxFloat64.
func Variance[T any](seq []T) (float64, error) {
	xs, err := float64s("variance", seq)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, emptyInput("variance")
	}
	return momentsOf(xs).variance(), nil
}

// center returns the point central moments are taken about: the mean, or the
// common value when every element is identical so that all moments are exactly 0.
func center(xs []float64) float64 {
	if constant(xs) {
		return xs[0]
	}
	return mean(xs)
}

func constant(xs []float64) bool {
	if len(xs) == 0 {
		return false
	}
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// moments holds the population central moments of a non-empty sample.
//
// Deviations from the center are rescaled by 2^-exp so that the largest has
// magnitude in [0.5, 1). Cubes and fourth powers of the rescaled deviations
// neither overflow nor underflow, and scaling by a power of two is exact, so
// ratios such as skewness are bit-for-bit those of the unscaled moments.
type moments struct {
	center float64
	half   bool // deviations are taken on x/2 because x - center overflows
	exp    int
	// Central moments of the rescaled deviations.
	m2, m3, m4 float64
}

func momentsOf(xs []float64) moments {
	m := moments{center: center(xs)}

	largest := m.largestDeviation(xs)
	if math.IsInf(largest, 0) {
		m.half = true
		largest = m.largestDeviation(xs)
	}
	if largest == 0 {
		return m
	}
	_, m.exp = math.Frexp(largest)

	var a2, a3, a4 accumulator
	for _, x := range xs {
		u := m.scaled(x)
		u2 := u * u
		a2.add(u2)
		a3.add(u2 * u)
		a4.add(u2 * u2)
	}
	n := float64(len(xs))
	m.m2, m.m3, m.m4 = a2.value()/n, a3.value()/n, a4.value()/n
	return m
}

func (m moments) largestDeviation(xs []float64) float64 {
	largest := 0.0
	for _, x := range xs {
		largest = math.Max(largest, math.Abs(m.deviation(x)))
	}
	return largest
}

func (m moments) deviation(x float64) float64 {
	if m.half {
		return x/2 - m.center/2
	}
	return x - m.center
}

func (m moments) scaled(x float64) float64 {
	return math.Ldexp(m.deviation(x), -m.exp)
}

// unit converts a rescaled magnitude back to the units of the sample.
func (m moments) unit(v float64, power int) float64 {
	e := power * m.exp
	if m.half {
		e += power
	}
	return math.Ldexp(v, e)
}

func (m moments) degenerate() bool {
	return m.m2 == 0
}

func (m moments) variance() float64 {
	return m.unit(m.m2, 2)
}

func (m moments) stdDev() float64 {
	return m.unit(math.Sqrt(m.m2), 1)
}

func (m moments) skewness() float64 {
	return m.m3 / math.Pow(m.m2, 1.5)
}

func (m moments) kurtosis() float64 {
	return m.m4 / (m.m2 * m.m2)
}

// within returns the fraction of xs at most k standard deviations from the
// center. The comparison is made on rescaled deviations.
func (m moments) within(xs []float64, k float64) float64 {
	radius := k * math.Sqrt(m.m2)
	count := 0
	for _, x := range xs {
		if math.Abs(m.scaled(x)) <= radius {
			count++
		}
	}
	return float64(count) / float64(len(xs))
}
