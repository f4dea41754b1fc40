package timeseries

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/gonormal/stats"
)

// CSVOptions holds options for CSV loading and saving.
type CSVOptions struct {
	DateColumn   string // Column name for dates (optional)
	ValueColumn  string // Column name for values (default: "y")
	FilterColumn string // Column to filter rows on (optional)
	FilterValue  string // Keep only rows whose FilterColumn equals this value
	DateFormat   string // Date format (default: "2006-01-02")
	HasHeader    bool   // Whether CSV has header row (default: true)
	Delimiter    rune   // Field delimiter (default: ',')
	SkipRows     int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// ErrColumnNotFound is returned when a requested column is missing from the header.
var ErrColumnNotFound = errors.New("column not found")

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return series, nil
}

// LoadCSVFromReader loads a series from an io.Reader.
// Empty and NA cells are skipped. Any other cell that does not parse as a
// number fails the whole load with stats.ErrTypeMismatch.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	series, err := LoadCSVColumnsFromReader(r, []string{opts.ValueColumn}, opts)
	if err != nil {
		return nil, err
	}
	return series[0], nil
}

// LoadCSVColumns loads several columns of a CSV file in a single pass.
func LoadCSVColumns(filename string, columns []string, opts *CSVOptions) ([]*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	series, err := LoadCSVColumnsFromReader(file, columns, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return series, nil
}

// LoadCSVColumnsFromReader reads r once and returns one series per column, in
// the order given. opts.ValueColumn is ignored. Without a header row only a
// single column can be loaded, taken from the second field.
func LoadCSVColumnsFromReader(r io.Reader, columns []string, opts *CSVOptions) ([]*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if len(columns) == 0 {
		return nil, errors.New("no columns requested")
	}
	if !opts.HasHeader && len(columns) > 1 {
		return nil, errors.Newf("a csv without header has one value column, %d requested", len(columns))
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter(opts)
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "skip rows")
		}
	}

	valueIdx := []int{1}
	dateIdx, filterIdx := 0, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		valueIdx = make([]int, len(columns))
		for j := range valueIdx {
			valueIdx[j] = -1
		}
		dateIdx = -1
		for i, h := range header {
			h = cell(h)
			isValue := false
			for j, c := range columns {
				if h == c {
					isValue = true
					if valueIdx[j] == -1 {
						valueIdx[j] = i
					}
				}
			}
			switch {
			case isValue:
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case opts.DateColumn == "" && (h == "ds" || h == "date" || h == "Date"):
				if dateIdx == -1 {
					dateIdx = i
				}
			}
			if opts.FilterColumn != "" && h == opts.FilterColumn {
				filterIdx = i
			}
		}
		for j, idx := range valueIdx {
			if idx == -1 {
				return nil, errors.Wrapf(ErrColumnNotFound, "value column %q", columns[j])
			}
		}
		if opts.FilterColumn != "" && filterIdx == -1 {
			return nil, errors.Wrapf(ErrColumnNotFound, "filter column %q", opts.FilterColumn)
		}
	}

	values := make([][]float64, len(columns))
	timestamps := make([][]time.Time, len(columns))
	row := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record")
		}
		row++

		if filterIdx >= 0 && filterIdx < len(record) && cell(record[filterIdx]) != opts.FilterValue {
			continue
		}

		var ts time.Time
		hasDate := false
		if dateIdx >= 0 && dateIdx < len(record) {
			ts, hasDate = parseDate(cell(record[dateIdx]), opts.DateFormat)
		}

		for j, idx := range valueIdx {
			if idx >= len(record) {
				continue
			}
			valStr := cell(record[idx])
			if valStr == "" || valStr == "NA" || valStr == "null" {
				continue
			}
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, errors.Wrapf(stats.ErrTypeMismatch, "column %q row %d: %q is not a real number",
					columns[j], row, valStr)
			}
			values[j] = append(values[j], val)
			if hasDate {
				timestamps[j] = append(timestamps[j], ts)
			}
		}
	}

	series := make([]*Series, len(columns))
	for j, column := range columns {
		series[j] = &Series{Values: values[j], Name: column}
		if len(timestamps[j]) == len(values[j]) && len(values[j]) > 0 {
			series[j].Timestamps = timestamps[j]
		}
	}
	return series, nil
}

func cell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func delimiter(opts *CSVOptions) rune {
	if opts.Delimiter == 0 {
		return ','
	}
	return opts.Delimiter
}

func parseDate(s, layout string) (time.Time, bool) {
	for _, f := range []string{layout, "2006-01-02", "2006-01-02T15:04:05", "2006/01/02", "02-Jan-2006"} {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads the rows of a CSV file whose filterColumn equals
// filterValue, taking values from valueColumn.
func LoadCSVFiltered(filename string, filterColumn, filterValue, valueColumn string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.FilterColumn = filterColumn
	opts.FilterValue = filterValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}

// SaveCSV saves a series to a CSV file. The header is DateColumn,ValueColumn
// when the series has timestamps and ValueColumn alone otherwise.
func SaveCSV(series *Series, filename string, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}

	if err := WriteCSV(file, series, opts); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close csv")
}

// WriteCSV writes a series as CSV to w.
func WriteCSV(w io.Writer, series *Series, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	dateColumn := opts.DateColumn
	if dateColumn == "" {
		dateColumn = "ds"
	}
	layout := opts.DateFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	comma := delimiter(opts)
	withDates := series.HasTimestamps()

	writer := bufio.NewWriter(w)

	// Write header
	if withDates {
		writer.WriteString(dateColumn)
		writer.WriteRune(comma)
	}
	writer.WriteString(opts.ValueColumn)
	writer.WriteString("\n")

	// Write data
	for i, v := range series.Values {
		if withDates {
			writer.WriteString(series.Timestamps[i].Format(layout))
			writer.WriteRune(comma)
		}
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return errors.Wrap(writer.Flush(), "write csv")
}
