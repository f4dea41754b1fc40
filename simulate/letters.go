package simulate

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gonormal/timeseries"
)

// Column names of the letters CSV file.
const (
	LettersDateColumn  = "Date"
	LettersValueColumn = "Letters"
)

// LettersConfig holds the parameters of the daily letter-count simulation.
type LettersConfig struct {
	Lambda float64   // Mean letters per day (Poisson rate)
	Start  time.Time // First simulated day
	End    time.Time // Last simulated day, inclusive
}

// DefaultLettersConfig returns the historical period 1909-01-01 to 1912-03-31
// with three letters per day on average.
func DefaultLettersConfig() LettersConfig {
	return LettersConfig{
		Lambda: 3,
		Start:  time.Date(1909, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(1912, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Validate checks the configuration.
func (c LettersConfig) Validate() error {
	if !(c.Lambda > 0) {
		return errors.Wrapf(ErrInvalidParameter, "lambda must be positive, got %v", c.Lambda)
	}
	if c.End.Before(c.Start) {
		return errors.Wrapf(ErrInvalidParameter, "end date %s is before start date %s",
			c.End.Format(time.DateOnly), c.Start.Format(time.DateOnly))
	}
	return nil
}

// Days returns the simulated calendar days, start and end included.
func (c LettersConfig) Days() []time.Time {
	var days []time.Time
	for d := c.Start; !d.After(c.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Letters simulates the number of letters received on each day of the
// configured period. Counts are Poisson distributed with mean Lambda.
func Letters(cfg LettersConfig, src rand.Source) (*timeseries.Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	days := cfg.Days()
	poisson := distuv.Poisson{Lambda: cfg.Lambda, Src: src}

	counts := make([]float64, len(days))
	for i := range counts {
		counts[i] = poisson.Rand()
	}

	series, err := timeseries.NewWithTimestamps(days, counts)
	if err != nil {
		return nil, err
	}
	series.Name = LettersValueColumn
	return series, nil
}

// LettersCSVOptions returns the CSV layout of the letters file.
func LettersCSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = LettersDateColumn
	opts.ValueColumn = LettersValueColumn
	return opts
}

// SaveLetters writes a simulated series to path, creating parent directories.
func SaveLetters(path string, series *timeseries.Series) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	return timeseries.SaveCSV(series, path, LettersCSVOptions())
}

// LoadLetters reads a letters file written by SaveLetters.
func LoadLetters(path string) (*timeseries.Series, error) {
	return timeseries.LoadCSV(path, LettersCSVOptions())
}
