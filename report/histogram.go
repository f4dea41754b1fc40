package report

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gonormal/stats"
)

const (
	defaultBins    = 10
	maxCountBins   = 1000
	chartWidth     = "900px"
	chartHeight    = "500px"
	expectedSeries = "Poisson pmf"
)

// HistogramOptions configures a histogram chart.
type HistogramOptions struct {
	Title string
	// Lambda > 0 overlays the Poisson pmf with this mean on count data.
	Lambda float64
	// Bins is the number of equal-width bins. Zero bins count data up to
	// 1000 per integer value and other data into ten bins.
	Bins int
}

// Bin is one bar of a histogram.
type Bin struct {
	Label    string
	Lower    float64 // inclusive
	Upper    float64 // exclusive, except for the last bin
	Count    int
	Relative float64
	Expected float64 // Poisson pmf at Lower for count data with an overlay
}

// Bins groups values for a histogram. Values must be finite real numbers.
func Bins(values []float64, cfg HistogramOptions) ([]Bin, error) {
	if _, err := stats.Sum(values); err != nil {
		return nil, errors.Wrap(err, "histogram")
	}
	if len(values) == 0 {
		return nil, errors.Wrap(stats.ErrEmptyInput, "histogram")
	}

	var bins []Bin
	if cfg.Bins == 0 && isCountData(values, maxCountBins) {
		bins = countBins(values, cfg.Lambda)
	} else {
		n := cfg.Bins
		if n <= 0 {
			n = defaultBins
		}
		bins = widthBins(values, n)
	}

	for i := range bins {
		bins[i].Relative = float64(bins[i].Count) / float64(len(values))
	}
	return bins, nil
}

// isCountData reports whether every value is an integer in [0, limit].
func isCountData(values []float64, limit float64) bool {
	for _, v := range values {
		if v < 0 || v > limit || v != math.Trunc(v) {
			return false
		}
	}
	return true
}

func countBins(values []float64, lambda float64) []Bin {
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}

	poisson := distuv.Poisson{Lambda: lambda}
	bins := make([]Bin, int(maxValue)+1)
	for k := range bins {
		bins[k] = Bin{Label: fmt.Sprint(k), Lower: float64(k), Upper: float64(k + 1)}
		if lambda > 0 {
			bins[k].Expected = poisson.Prob(float64(k))
		}
	}
	for _, v := range values {
		bins[int(v)].Count++
	}
	return bins
}

func widthBins(values []float64, n int) []Bin {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo == hi {
		return []Bin{{Label: fmt.Sprintf("%.2f", lo), Lower: lo, Upper: hi, Count: len(values)}}
	}

	// Bounds are computed on halved values so that hi - lo cannot overflow.
	halfWidth := (hi/2 - lo/2) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		lower := 2 * (lo/2 + float64(i)*halfWidth)
		upper := 2 * (lo/2 + float64(i+1)*halfWidth)
		if i == n-1 {
			upper = hi
		}
		bins[i] = Bin{Label: fmt.Sprintf("[%.2f, %.2f)", lower, upper), Lower: lower, Upper: upper}
	}
	bins[n-1].Label = fmt.Sprintf("[%.2f, %.2f]", bins[n-1].Lower, hi)

	for _, v := range values {
		i := int((v/2 - lo/2) / halfWidth)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// Histogram writes an HTML bar chart of the relative frequencies of values.
func Histogram(w io.Writer, values []float64, cfg HistogramOptions) error {
	bins, err := Bins(values, cfg)
	if err != nil {
		return err
	}

	title := cfg.Title
	if title == "" {
		title = "Relative frequency"
	}

	labels := make([]string, len(bins))
	observed := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
		observed[i] = opts.BarData{Value: b.Relative}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("n = %d", len(values))}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "relative frequency"}),
	)
	bar.SetXAxis(labels).AddSeries("observed", observed)

	if cfg.Lambda > 0 && bins[0].Expected > 0 {
		expected := make([]opts.LineData, len(bins))
		for i, b := range bins {
			expected[i] = opts.LineData{Value: b.Expected}
		}
		line := charts.NewLine()
		line.SetXAxis(labels).AddSeries(
			fmt.Sprintf("%s (λ = %g)", expectedSeries, cfg.Lambda), expected,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		)
		bar.Overlap(line)
	}

	return errors.Wrap(bar.Render(w), "render histogram")
}
