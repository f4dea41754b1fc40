package stats

// Expected fractions of a normal population within 1, 2 and 3 standard
// deviations of the mean (the 68-95-99.7 rule).
const (
	EmpiricalRule1Std = 0.6827
	EmpiricalRule2Std = 0.9545
	EmpiricalRule3Std = 0.9973
)

// CoverageResult holds the fractions of a sample within 1, 2 and 3 population
// standard deviations of its mean.
type CoverageResult struct {
	Within1Std float64 `json:"within_1std" yaml:"within_1std"`
	Within2Std float64 `json:"within_2std" yaml:"within_2std"`
	Within3Std float64 `json:"within_3std" yaml:"within_3std"`
}

// Deviations returns observed minus expected fractions for the 1, 2 and 3
// standard deviation bands.
func (c *CoverageResult) Deviations() [3]float64 {
	return [3]float64{
		c.Within1Std - EmpiricalRule1Std,
		c.Within2Std - EmpiricalRule2Std,
		c.Within3Std - EmpiricalRule3Std,
	}
}

// PercentageInKStd returns the fraction of elements x with
// |x - mean| <= k * StdDev. The result lies in [0, 1]; for negative k no
// element qualifies. No normality assumption is needed.
func PercentageInKStd[T any](seq []T, k float64) (float64, error) {
	xs, err := float64s("coverage", seq)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, emptyInput("coverage")
	}
	return momentsOf(xs).within(xs, k), nil
}

// PercentageIn1Std returns PercentageInKStd(seq, 1).
func PercentageIn1Std[T any](seq []T) (float64, error) {
	return PercentageInKStd(seq, 1)
}

// PercentageIn2Std returns PercentageInKStd(seq, 2).
func PercentageIn2Std[T any](seq []T) (float64, error) {
	return PercentageInKStd(seq, 2)
}

// PercentageIn3Std returns PercentageInKStd(seq, 3).
func PercentageIn3Std[T any](seq []T) (float64, error) {
	return PercentageInKStd(seq, 3)
}

// Coverage returns the 1, 2 and 3 standard deviation fractions at once.
func Coverage[T any](seq []T) (*CoverageResult, error) {
	xs, err := float64s("coverage", seq)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, emptyInput("coverage")
	}
	return coverage(xs), nil
}

func coverage(xs []float64) *CoverageResult {
	m := momentsOf(xs)
	return &CoverageResult{
		Within1Std: m.within(xs, 1),
		Within2Std: m.within(xs, 2),
		Within3Std: m.within(xs, 3),
	}
}
