package cost

import (
	"errors"
	"math"

	"github.com/katalvlaran/autotune/parameter"
)

// Cost is a strictly-orderable measure of a configuration's quality; lower
// is better. Comparisons use plain float64 ordering.
type Cost float64

// ErrInvalidConfiguration is the sentinel a Function returns (wrapped, via
// fmt.Errorf("%w: …", ErrInvalidConfiguration) or returned directly) to
// declare a configuration infeasible rather than failing outright. The
// orchestrator records the point as invalid and reports a penalty cost to
// the search technique; the run continues.
var ErrInvalidConfiguration = errors.New("cost: configuration is infeasible")

// DefaultPenalty is the fixed sentinel penalty cost used when no valid cost
// has yet been observed in a run: strictly greater than any Cost a
// well-behaved Function will ever report.
var DefaultPenalty = Cost(math.Inf(1))

// Function is the external cost function contract: evaluate a
// configuration and report its Cost, or return an error. Returning an error
// that satisfies errors.Is(err, ErrInvalidConfiguration) marks the point
// infeasible without aborting the run; any other error aborts the run with
// the error surfaced.
type Function func(cfg parameter.Configuration) (Cost, error)

// IsInvalidConfiguration reports whether err signals an infeasible
// configuration rather than a fatal cost-function failure.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
