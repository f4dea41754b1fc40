package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gonormal/report"
	"github.com/sartorproj/gonormal/stats"
)

func TestCountBins(t *testing.T) {
	t.Parallel()

	bins, err := report.Bins([]float64{0, 1, 1, 3}, report.HistogramOptions{Lambda: 1})
	require.NoError(t, err)
	require.Len(t, bins, 4)

	assert.Equal(t, []int{1, 2, 0, 1}, []int{bins[0].Count, bins[1].Count, bins[2].Count, bins[3].Count})
	assert.InDelta(t, 0.5, bins[1].Relative, 1e-12)
	assert.InDelta(t, math.Exp(-1), bins[0].Expected, 1e-12)
	assert.InDelta(t, math.Exp(-1)/6, bins[3].Expected, 1e-12)
	assert.Equal(t, "3", bins[3].Label)
}

func TestWidthBins(t *testing.T) {
	t.Parallel()

	bins, err := report.Bins([]float64{0.5, 1.5, 2.5, 3.5, 4.5}, report.HistogramOptions{Bins: 2})
	require.NoError(t, err)
	require.Len(t, bins, 2)

	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 3, bins[1].Count)
	assert.InDelta(t, 1.0, bins[0].Relative+bins[1].Relative, 1e-12)
	assert.InDelta(t, 4.5, bins[1].Upper, 0)
}

func TestLargeIntegersUseWidthBins(t *testing.T) {
	t.Parallel()

	bins, err := report.Bins([]float64{1, 2, 1e18}, report.HistogramOptions{})
	require.NoError(t, err)
	require.Len(t, bins, 10)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 1, bins[9].Count)
	assert.Equal(t, 1e18, bins[9].Upper)

	bins, err = report.Bins([]float64{0, 1000}, report.HistogramOptions{})
	require.NoError(t, err)
	assert.Len(t, bins, 1001)

	bins, err = report.Bins([]float64{0, 1001}, report.HistogramOptions{})
	require.NoError(t, err)
	assert.Len(t, bins, 10)
}

func TestWidthBinsFullRange(t *testing.T) {
	t.Parallel()

	bins, err := report.Bins([]float64{-math.MaxFloat64, 0, math.MaxFloat64}, report.HistogramOptions{Bins: 2})
	require.NoError(t, err)
	require.Len(t, bins, 2)
	assert.Equal(t, 1, bins[0].Count)
	assert.Equal(t, 2, bins[1].Count)
	assert.Equal(t, 0.0, bins[1].Lower)
}

func TestConstantRealSample(t *testing.T) {
	t.Parallel()

	bins, err := report.Bins([]float64{2.5, 2.5}, report.HistogramOptions{})
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, 2, bins[0].Count)
}

func TestBinsErrors(t *testing.T) {
	t.Parallel()

	_, err := report.Bins(nil, report.HistogramOptions{})
	assert.True(t, errors.Is(err, stats.ErrEmptyInput))

	_, err = report.Bins([]float64{1, math.NaN()}, report.HistogramOptions{})
	assert.True(t, errors.Is(err, stats.ErrTypeMismatch))
}

func TestHistogramHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	values := []float64{0, 1, 1, 2, 2, 2, 3, 3, 4, 6}
	require.NoError(t, report.Histogram(&buf, values, report.HistogramOptions{Title: "Letters per day", Lambda: 3}))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Letters per day")
	assert.Contains(t, out, "Poisson pmf")
}
