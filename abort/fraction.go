package abort

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/autotune/tuningdata"
)

// ErrInvalidFraction is returned by NewFraction when f is outside (0, 1].
var ErrInvalidFraction = errors.New("abort: fraction must be in (0, 1]")

// Fraction stops a run once at least ⌈F·|SP|⌉ distinct configurations
// (valid or invalid, counted by search-space index) have been evaluated,
// where |SP| is the constrained search-space size.
type Fraction struct {
	F float64
}

// NewFraction constructs a Fraction condition. f must be in (0, 1].
func NewFraction(f float64) (Fraction, error) {
	if f <= 0 || f > 1 {
		return Fraction{}, fmt.Errorf("%w: got %g", ErrInvalidFraction, f)
	}
	return Fraction{F: f}, nil
}

func (fr Fraction) Stop(td *tuningdata.TuningData) bool {
	threshold := int64(math.Ceil(fr.F * float64(td.SearchSpaceSize())))
	distinct := make(map[int64]struct{})
	for _, e := range td.History() {
		distinct[e.Index] = struct{}{}
	}
	return int64(len(distinct)) >= threshold
}

func (fr Fraction) ID() string {
	return fmt.Sprintf("Fraction(%g)", fr.F)
}
