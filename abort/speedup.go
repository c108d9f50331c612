package abort

import (
	"fmt"
	"time"

	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/tuningdata"
)

// SpeedupDuration stops a run when the best cost has not improved by at
// least factor S over the trailing window Window: letting baseline be the
// best cost as of Window ago and best the current best cost, it stops once
// best > baseline/S. It reports false until the window is fully populated
// (fewer than Window of history behind the first recorded improvement).
type SpeedupDuration struct {
	S      float64
	Window time.Duration
}

// NewSpeedupDuration constructs a SpeedupDuration condition.
func NewSpeedupDuration(s float64, window time.Duration) SpeedupDuration {
	return SpeedupDuration{S: s, Window: window}
}

func (sd SpeedupDuration) Stop(td *tuningdata.TuningData) bool {
	best, ok := td.BestCost()
	if !ok {
		return false
	}

	history := td.History()
	if len(history) == 0 {
		return false
	}
	now := history[len(history)-1].Timestamp
	cutoff := now.Add(-sd.Window)

	baseline, found := baselineAsOfTime(td.ImprovementHistory(), cutoff)
	if !found {
		return false
	}

	return float64(best) > float64(baseline)/sd.S
}

func (sd SpeedupDuration) ID() string {
	return fmt.Sprintf("Speedup(%g, %s)", sd.S, sd.Window)
}

// SpeedupEvaluations is the evaluation-count analogue of SpeedupDuration:
// the trailing window is measured in evaluations rather than wall-clock
// time.
type SpeedupEvaluations struct {
	S      float64
	Window int
}

// NewSpeedupEvaluations constructs a SpeedupEvaluations condition.
func NewSpeedupEvaluations(s float64, window int) SpeedupEvaluations {
	return SpeedupEvaluations{S: s, Window: window}
}

func (se SpeedupEvaluations) Stop(td *tuningdata.TuningData) bool {
	best, ok := td.BestCost()
	if !ok {
		return false
	}

	cutoffEval := td.EvaluatedConfigurations() - se.Window
	if cutoffEval <= 0 {
		return false
	}

	baseline, found := baselineAsOfEvaluation(td.ImprovementHistory(), cutoffEval)
	if !found {
		return false
	}

	return float64(best) > float64(baseline)/se.S
}

func (se SpeedupEvaluations) ID() string {
	return fmt.Sprintf("Speedup(%g, %d evaluations)", se.S, se.Window)
}

// baselineAsOfTime returns the best cost recorded at or before cutoff, and
// whether any improvement had been recorded by then. improvements is
// ascending in time, so the last entry not after cutoff is the baseline.
func baselineAsOfTime(improvements []tuningdata.ImprovementEntry, cutoff time.Time) (bestCost cost.Cost, found bool) {
	for _, e := range improvements {
		if e.Timestamp.After(cutoff) {
			break
		}
		bestCost, found = e.Cost, true
	}
	return bestCost, found
}

// baselineAsOfEvaluation returns the best cost recorded at or before the
// given 1-based evaluation count, and whether any improvement had been
// recorded by then.
func baselineAsOfEvaluation(improvements []tuningdata.ImprovementEntry, cutoffEval int) (bestCost cost.Cost, found bool) {
	for _, e := range improvements {
		if e.EvaluationIndex > cutoffEval {
			break
		}
		bestCost, found = e.Cost, true
	}
	return bestCost, found
}
