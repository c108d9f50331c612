package abort

import (
	"fmt"

	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/tuningdata"
)

// CostThreshold stops a run as soon as the best cost found so far is at or
// below a target value. Its ID is reported as "Cost(c)"; the type itself
// is named CostThreshold in Go to avoid colliding with the cost package.
type CostThreshold struct {
	C cost.Cost
}

// NewCostThreshold constructs a CostThreshold condition targeting c.
func NewCostThreshold(c cost.Cost) CostThreshold {
	return CostThreshold{C: c}
}

func (ct CostThreshold) Stop(td *tuningdata.TuningData) bool {
	best, ok := td.BestCost()
	return ok && best <= ct.C
}

func (ct CostThreshold) ID() string {
	return fmt.Sprintf("Cost(%g)", float64(ct.C))
}
