// Package simulate generates the synthetic datasets the normality checks are
// exercised on.
//
// Two generators are provided:
//
//   - Letters: daily letter counts over a calendar period, drawn from a
//     Poisson distribution. The result is a daily timeseries.Series.
//   - Books: a margin-whitespace dataset of lyric and prose books in small
//     and large formats. Its defaults reproduce Simpson's paradox.
//
// Every generator takes an explicit random source, so runs are reproducible:
//
//	src := simulate.NewSource(42)
//	letters, err := simulate.Letters(simulate.DefaultLettersConfig(), src)
//	books, err := simulate.Books(simulate.DefaultBooksConfig(), src)
package simulate
