package simulate

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// ErrInvalidParameter is returned when a generator configuration is out of range.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// NewSource returns a deterministic random source for seed. Generators never
// use a package-level source: the same seed always reproduces the same data.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
