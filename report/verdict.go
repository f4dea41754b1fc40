package report

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Verdict describes the normality decision of a result in one line.
func Verdict(r Result) string {
	switch {
	case r.Summary.Normality == nil:
		return fmt.Sprintf("%s: all values are identical, normality cannot be assessed", r.Column)
	case r.Normal:
		return fmt.Sprintf("%s: p = %.4f >= %.2f, normality is not rejected", r.Column, r.Summary.Normality.PValue, r.Alpha)
	default:
		return fmt.Sprintf("%s: p = %.4f < %.2f, normality is rejected", r.Column, r.Summary.Normality.PValue, r.Alpha)
	}
}

// WriteVerdicts writes one coloured verdict line per result.
func WriteVerdicts(w io.Writer, results []Result) error {
	for _, r := range results {
		c := color.New(color.FgGreen)
		switch {
		case r.Summary.Normality == nil:
			c = color.New(color.FgYellow)
		case !r.Normal:
			c = color.New(color.FgRed)
		}
		if _, err := c.Fprintln(w, Verdict(r)); err != nil {
			return errors.Wrap(err, "write verdict")
		}
	}
	return nil
}
