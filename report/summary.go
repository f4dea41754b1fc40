package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gonormal/stats"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Result is the summary of one sample.
type Result struct {
	Column  string         `json:"column" yaml:"column"`
	Summary *stats.Summary `json:"summary" yaml:"summary"`
	Alpha   float64        `json:"alpha" yaml:"alpha"`
	Normal  bool           `json:"normal" yaml:"normal"`
}

// NewResult wraps a summary and records whether normality survives at alpha.
func NewResult(column string, summary *stats.Summary, alpha float64) Result {
	return Result{
		Column:  column,
		Summary: summary,
		Alpha:   alpha,
		Normal:  !summary.RejectNormality(alpha),
	}
}

// Encode writes results to w in the given format.
func Encode(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case FormatTable:
		if _, err := fmt.Fprintln(w, SummaryTable(results)); err != nil {
			return errors.Wrap(err, "write table")
		}
		return WriteVerdicts(w, results)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// SummaryTable renders results side by side, one column per sample.
func SummaryTable(results []Result) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"statistic"}
	for _, r := range results {
		header = append(header, r.Column)
	}
	tbl.AppendHeader(header)

	rows := []struct {
		name  string
		value func(*stats.Summary) string
	}{
		{"n", func(s *stats.Summary) string { return humanize.Comma(int64(s.N)) }},
		{"sum", num(func(s *stats.Summary) float64 { return s.Sum })},
		{"mean", num(func(s *stats.Summary) float64 { return s.Mean })},
		{"median", num(func(s *stats.Summary) float64 { return s.Median })},
		{"std dev", num(func(s *stats.Summary) float64 { return s.StdDev })},
		{"|mean - median|", num(func(s *stats.Summary) float64 { return s.DistanceMeanMedian })},
		{"within 1 std", pct(func(s *stats.Summary) float64 { return s.Coverage.Within1Std }, stats.EmpiricalRule1Std)},
		{"within 2 std", pct(func(s *stats.Summary) float64 { return s.Coverage.Within2Std }, stats.EmpiricalRule2Std)},
		{"within 3 std", pct(func(s *stats.Summary) float64 { return s.Coverage.Within3Std }, stats.EmpiricalRule3Std)},
		{"skewness", shape(func(jb *stats.JarqueBeraResult) float64 { return jb.Skewness })},
		{"kurtosis", shape(func(jb *stats.JarqueBeraResult) float64 { return jb.Kurtosis })},
		{"jarque-bera", shape(func(jb *stats.JarqueBeraResult) float64 { return jb.Statistic })},
		{"p-value", shape(func(jb *stats.JarqueBeraResult) float64 { return jb.PValue })},
	}

	for _, row := range rows {
		cells := table.Row{row.name}
		for _, r := range results {
			cells = append(cells, row.value(r.Summary))
		}
		tbl.AppendRow(cells)
	}

	configs := make([]table.ColumnConfig, 0, len(results))
	for i := range results {
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	tbl.SetColumnConfigs(configs)

	return tbl.Render()
}

func num(field func(*stats.Summary) float64) func(*stats.Summary) string {
	return func(s *stats.Summary) string {
		return fmt.Sprintf("%.4f", field(s))
	}
}

// shape renders a Jarque-Bera field, or n/a when all values are identical.
func shape(field func(*stats.JarqueBeraResult) float64) func(*stats.Summary) string {
	return func(s *stats.Summary) string {
		if s.Normality == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.4f", field(s.Normality))
	}
}

func pct(field func(*stats.Summary) float64, expected float64) func(*stats.Summary) string {
	return func(s *stats.Summary) string {
		return fmt.Sprintf("%.2f%% (%.2f%%)", field(s)*100, expected*100)
	}
}
