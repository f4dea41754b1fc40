// Package gonormal provides descriptive statistics and a Jarque-Bera
// normality check for numeric samples.
//
// The module is organised as one package per concern:
//
//   - stats: sum, mean, median, population standard deviation, skewness,
//     kurtosis, the Jarque-Bera statistic and its p-value, 1/2/3 standard
//     deviation coverage and the distance between mean and median.
//   - timeseries: ordered numeric series with CSV load and save.
//   - simulate: reproducible letter-count and book-whitespace datasets.
//   - report: summary tables, JSON and YAML encodings, grouped averages and
//     HTML histograms.
//
// # Quick Start
//
// Summarise a sample and test it for normality:
//
//	summary, err := stats.Describe([]float64{3, 1, 4, 1, 5, 9, 2, 6})
//	if err != nil {
//	    return err
//	}
//	if summary.RejectNormality(0.05) {
//	    // not normal at the 5% level
//	}
//
// Every function accepts a slice of any element type. Elements that are not
// real numbers fail the call with stats.ErrTypeMismatch:
//
//	_, err := stats.Mean([]any{1, "X", 3}) // errors.Is(err, stats.ErrTypeMismatch)
//
// # Simulation
//
//	src := simulate.NewSource(42)
//	letters, err := simulate.Letters(simulate.DefaultLettersConfig(), src)
//	p, err := stats.PValueApproximation(letters.Values)
//
// # Command Line
//
// The gonormal command wraps the packages:
//
//	gonormal simulate letters --lambda 3 --output data/letters.csv
//	gonormal describe --file data/letters.csv --column Letters
//	gonormal plot --file data/letters.csv --column Letters --lambda 3
package gonormal
