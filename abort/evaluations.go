package abort

import (
	"fmt"

	"github.com/katalvlaran/autotune/tuningdata"
)

// Evaluations stops a run once at least N configurations (valid or
// invalid) have been evaluated.
type Evaluations struct {
	N int
}

// NewEvaluations constructs an Evaluations condition. N <= 0 makes Stop
// report true even before any evaluation; Tune still evaluates its first
// batch, since it consults the condition only after each batch. Callers
// that want "run to
// exhaustion" should leave the tuner's default abort condition in place
// instead of constructing Evaluations(0).
func NewEvaluations(n int) Evaluations {
	return Evaluations{N: n}
}

func (e Evaluations) Stop(td *tuningdata.TuningData) bool {
	return td.EvaluatedConfigurations() >= e.N
}

func (e Evaluations) ID() string {
	return fmt.Sprintf("Evaluations(%d)", e.N)
}
