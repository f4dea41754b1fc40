package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

func TestScenarios(t *testing.T) {
	datadriven.RunTest(t, "testdata/scenarios", func(t *testing.T, d *datadriven.TestData) string {
		seq := parseSample(d.Input)

		var v float64
		var err error
		switch d.Cmd {
		case "sum":
			v, err = Sum(seq)
		case "mean":
			v, err = Mean(seq)
		case "median":
			v, err = Median(seq)
		case "std_dev":
			v, err = StdDev(seq)
		case "skewness":
			v, err = Skewness(seq)
		case "kurtosis":
			v, err = Kurtosis(seq)
		case "jarque_bera":
			v, err = JarqueBeraStatistic(seq)
		case "p_value":
			v, err = PValueApproximation(seq)
		case "coverage":
			var k int
			d.ScanArgs(t, "k", &k)
			v, err = PercentageInKStd(seq, float64(k))
		case "distance":
			v, err = DistanceMeanMedian(seq)
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
		}

		if err != nil {
			return "error: " + errorKind(err)
		}
		return fmt.Sprintf("%.2f", round2(v))
	})
}

// parseSample turns whitespace-separated tokens into a sample. Tokens that do
// not parse as numbers are kept as strings.
func parseSample(input string) []any {
	fields := strings.Fields(input)
	seq := make([]any, 0, len(fields))
	for _, f := range fields {
		if x, err := strconv.ParseFloat(f, 64); err == nil {
			seq = append(seq, x)
			continue
		}
		seq = append(seq, f)
	}
	return seq
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrTypeMismatch):
		return "type mismatch"
	case errors.Is(err, ErrEmptyInput):
		return "empty input"
	case errors.Is(err, ErrDegenerateInput):
		return "degenerate input"
	default:
		return err.Error()
	}
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
