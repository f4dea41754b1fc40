package stats

// Skewness returns the population skewness d3 / d2^1.5, where dk is the k-th
// population central moment. A symmetric sample has skewness 0.
func Skewness[T any](seq []T) (float64, error) {
	xs, err := float64s("skewness", seq)
	if err != nil {
		return 0, err
	}
	s, _, err := shape("skewness", xs)
	return s, err
}

// Kurtosis returns the raw population kurtosis d4 / d2^2. It is not shifted
// by -3: a normal population has kurtosis 3. See ExcessKurtosis.
func Kurtosis[T any](seq []T) (float64, error) {
	xs, err := float64s("kurtosis", seq)
	if err != nil {
		return 0, err
	}
	_, k, err := shape("kurtosis", xs)
	return k, err
}

// ExcessKurtosis returns Kurtosis minus 3.
func ExcessKurtosis[T any](seq []T) (float64, error) {
	xs, err := float64s("excess kurtosis", seq)
	if err != nil {
		return 0, err
	}
	_, k, err := shape("excess kurtosis", xs)
	if err != nil {
		return 0, err
	}
	return k - 3, nil
}

// shape returns skewness and raw kurtosis of a validated sample.
func shape(op string, xs []float64) (skew, kurt float64, err error) {
	if len(xs) == 0 {
		return 0, 0, emptyInput(op)
	}

	m := momentsOf(xs)
	if m.degenerate() {
		return 0, 0, degenerateInput(op, len(xs))
	}
	return m.skewness(), m.kurtosis(), nil
}
