package stats

import "math"

// JarqueBeraDOF is the number of degrees of freedom of the asymptotic
// chi-squared distribution of the Jarque-Bera statistic.
const JarqueBeraDOF = 2

// JarqueBeraResult represents the result of a Jarque-Bera normality test.
type JarqueBeraResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	PValue    float64 `json:"p_value" yaml:"p_value"`
	Skewness  float64 `json:"skewness" yaml:"skewness"`
	Kurtosis  float64 `json:"kurtosis" yaml:"kurtosis"` // Raw kurtosis, 3 under normality
	N         int     `json:"n" yaml:"n"`
	DOF       int     `json:"dof" yaml:"dof"`
}

// Reject reports whether normality is rejected at significance level alpha.
func (r *JarqueBeraResult) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// JarqueBeraStatistic returns JB = n/6 * (S^2 + (K-3)^2/4), where S is the
// skewness and K the raw kurtosis. Larger values indicate a stronger departure
// from normality.
func JarqueBeraStatistic[T any](seq []T) (float64, error) {
	xs, err := float64s("jarque-bera", seq)
	if err != nil {
		return 0, err
	}
	r, err := jarqueBera("jarque-bera", xs)
	if err != nil {
		return 0, err
	}
	return r.Statistic, nil
}

// PValueApproximation returns the upper-tail probability of the Jarque-Bera
// statistic under a chi-squared distribution with 2 degrees of freedom,
// exp(-JB/2). The result lies in [0, 1] and decreases as JB grows.
func PValueApproximation[T any](seq []T) (float64, error) {
	xs, err := float64s("p-value", seq)
	if err != nil {
		return 0, err
	}
	r, err := jarqueBera("p-value", xs)
	if err != nil {
		return 0, err
	}
	return r.PValue, nil
}

// JarqueBera performs the Jarque-Bera test for normality.
// The null hypothesis is that the sample has zero skewness and zero excess
// kurtosis. If p-value < 0.05, we reject the null and conclude the sample is
// not normally distributed.
func JarqueBera[T any](seq []T) (*JarqueBeraResult, error) {
	xs, err := float64s("jarque-bera", seq)
	if err != nil {
		return nil, err
	}
	return jarqueBera("jarque-bera", xs)
}

func jarqueBera(op string, xs []float64) (*JarqueBeraResult, error) {
	s, k, err := shape(op, xs)
	if err != nil {
		return nil, err
	}

	n := float64(len(xs))
	excess := k - 3
	jb := n / 6 * (s*s + excess*excess/4)

	return &JarqueBeraResult{
		Statistic: jb,
		PValue:    chiSquared2Survival(jb),
		Skewness:  s,
		Kurtosis:  k,
		N:         len(xs),
		DOF:       JarqueBeraDOF,
	}, nil
}

// chiSquared2Survival is the survival function of the chi-squared
// distribution with 2 degrees of freedom, which has the closed form exp(-x/2).
func chiSquared2Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-x / 2)
}
