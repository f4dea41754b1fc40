// Package timeseries provides ordered numeric series and their CSV persistence.
//
// A Series is the bridge between data producers (simulators, CSV files) and
// the stats package: any numeric column becomes a sample.
//
// # Creating a Series
//
// Create a series from a slice, with or without daily timestamps:
//
//	series := timeseries.New([]float64{3, 1, 4, 1, 5})
//	daily := timeseries.NewDaily(start, counts)
//
// # Loading from CSV
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("letters.csv", "Letters")
//
//	// Load the rows of one group
//	lyric, err := timeseries.LoadCSVFiltered(
//	    "margin.csv",
//	    "genre", "Lyric",  // filter column and value
//	    "whitespace_cm2",  // value column
//	)
//
// A cell that is not a number fails the load with stats.ErrTypeMismatch;
// empty and NA cells are skipped.
//
// # Saving to CSV
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateColumn = "Date"
//	opts.ValueColumn = "Letters"
//	err := timeseries.SaveCSV(series, "letters.csv", opts)
//
// # Statistics
//
//	summary, err := series.Describe()
//	freq, err := series.Frequencies() // counts per integer value
package timeseries
