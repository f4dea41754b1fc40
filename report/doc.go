// Package report renders statistics engine results for people and machines.
//
// # Summaries
//
// A Result pairs a column name with its stats.Summary and the significance
// level used for the normality verdict. Results are written as a table, JSON
// or YAML:
//
//	summary, err := stats.Describe(series.Values)
//	result := report.NewResult("Letters", summary, 0.05)
//	err = report.Encode(os.Stdout, report.FormatTable, []report.Result{result})
//
// # Grouped averages
//
// Group computes the mean of one book field by genre, by format, and by
// genre and format together. SimpsonsParadox reports whether the per-format
// ordering of genres reverses in aggregate.
//
// # Histograms
//
// Histogram writes an HTML bar chart of relative frequencies. Count data is
// binned per integer value and may be overlaid with a Poisson pmf:
//
//	err := report.Histogram(file, series.Values, report.HistogramOptions{Lambda: 3})
package report
