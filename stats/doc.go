// Package stats provides descriptive statistics and a normality test for
// samples of real numbers.
//
// Every function is pure: it reads its input, never modifies or retains it,
// and may be called concurrently with any other call. Functions are generic
// over the element type so that typed slices and untyped slices (decoded JSON,
// CSV tokens) are accepted alike; each call first checks that every element is
// a finite real number and otherwise fails with ErrTypeMismatch.
//
// # Central Tendency
//
//	total, _ := stats.Sum([]int{1, 2, 3, 4})          // 10
//	mean, _ := stats.Mean([]float64{1.5, 2.5, 3.5})   // 2.5
//	median, _ := stats.Median([]float64{-5, -1, -3})  // -3
//
// Sum and Mean return 0 for an empty sample. Median fails with ErrEmptyInput.
//
// # Dispersion and Shape
//
// All moments use the population divisor n:
//
//	sd, _ := stats.StdDev(values)      // sqrt(d2)
//	skew, _ := stats.Skewness(values)  // d3 / d2^1.5
//	kurt, _ := stats.Kurtosis(values)  // d4 / d2^2, 3 for a normal population
//
// Kurtosis is raw, not excess; use ExcessKurtosis for the shifted value.
// Skewness and Kurtosis fail with ErrDegenerateInput when every value is identical.
//
// # Normality Test
//
//	// Jarque-Bera test
//	// H0: skewness 0 and excess kurtosis 0
//	jb, err := stats.JarqueBera(values)
//	if err == nil && jb.Reject(0.05) {
//	    // Sample is not normally distributed
//	}
//
// The p-value is the chi-squared(2) survival function exp(-JB/2).
//
// # Coverage
//
// Fractions within 1, 2 and 3 standard deviations of the mean, for comparison
// with the 68-95-99.7 rule:
//
//	cov, _ := stats.Coverage(values)
//	fmt.Printf("%.2f %.2f %.2f\n", cov.Within1Std, cov.Within2Std, cov.Within3Std)
//
// # Errors
//
// Failures wrap exactly one of ErrTypeMismatch, ErrEmptyInput and
// ErrDegenerateInput:
//
//	_, err := stats.Sum([]any{"X", "V"})
//	errors.Is(err, stats.ErrTypeMismatch) // true
package stats
