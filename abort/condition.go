package abort

import (
	"fmt"

	"github.com/katalvlaran/autotune/tuningdata"
)

// Condition decides whether the tuner orchestrator should stop a run. It is
// consulted after each batch of costs is reported to the search technique;
// the first call that returns true ends the run with TerminatedEarly set.
//
// Implementations must treat td as read-only and must be safe to call
// repeatedly with a growing history.
type Condition interface {
	// Stop inspects the current tuning-data snapshot and reports whether
	// the run should end now.
	Stop(td *tuningdata.TuningData) bool

	// ID returns a short, stable, human-readable identifier used for
	// logging and TuningData.AbortConditionID — e.g. "Evaluations(200)".
	ID() string
}

// And combines two conditions: the result stops only once both a and b
// independently report true.
func And(a, b Condition) Condition {
	return andCondition{a: a, b: b}
}

// Or combines two conditions: the result stops as soon as either a or b
// reports true.
func Or(a, b Condition) Condition {
	return orCondition{a: a, b: b}
}

type andCondition struct{ a, b Condition }

func (c andCondition) Stop(td *tuningdata.TuningData) bool {
	return c.a.Stop(td) && c.b.Stop(td)
}

func (c andCondition) ID() string {
	return fmt.Sprintf("And(%s, %s)", c.a.ID(), c.b.ID())
}

type orCondition struct{ a, b Condition }

func (c orCondition) Stop(td *tuningdata.TuningData) bool {
	return c.a.Stop(td) || c.b.Stop(td)
}

func (c orCondition) ID() string {
	return fmt.Sprintf("Or(%s, %s)", c.a.ID(), c.b.ID())
}
