package stats

import "github.com/cockroachdb/errors"

// Errors returned by the statistics functions. Every failure wraps exactly one
// of them, so callers can classify with errors.Is.
var (
	// ErrTypeMismatch is returned when a sample contains an element that is not
	// a finite real number.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrEmptyInput is returned by statistics that have no value for an empty sample.
	ErrEmptyInput = errors.New("empty input")

	// ErrDegenerateInput is returned by shape statistics when the population
	// variance is zero.
	ErrDegenerateInput = errors.New("degenerate input: zero variance")
)

func emptyInput(op string) error {
	return errors.Wrapf(ErrEmptyInput, "%s", op)
}

func degenerateInput(op string, n int) error {
	return errors.Wrapf(ErrDegenerateInput, "%s: all %d values are identical", op, n)
}
