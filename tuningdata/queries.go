package tuningdata

import (
	"time"

	"github.com/katalvlaran/autotune/cost"
)

// Best returns the best (lowest-cost) configuration recorded so far and
// true, or false if no valid cost has ever been recorded. Since
// ImprovementHistory is a monotonically-decreasing subsequence of History,
// its last element is always the current best.
func (td *TuningData) Best() (ImprovementEntry, bool) {
	td.mu.RLock()
	defer td.mu.RUnlock()
	if len(td.improvementHistory) == 0 {
		return ImprovementEntry{}, false
	}
	return td.improvementHistory[len(td.improvementHistory)-1], true
}

// BestCost returns the best cost recorded so far and true, or false if no
// valid cost has ever been recorded.
func (td *TuningData) BestCost() (cost.Cost, bool) {
	best, ok := td.Best()
	if !ok {
		return 0, false
	}
	return best.Cost, true
}

// BestIndex returns the search-space index of the best configuration found
// so far and true, or false if none has been recorded.
func (td *TuningData) BestIndex() (int64, bool) {
	best, ok := td.Best()
	if !ok {
		return 0, false
	}
	return best.Index, true
}

// BestCoordinates returns the coordinate tuple that produced the best
// configuration found so far, and true — only when that configuration was
// proposed by a coordinate-space technique; index-space proposals carry no
// coordinate, so this reports false for them even though a best exists.
func (td *TuningData) BestCoordinates() ([]float64, bool) {
	best, ok := td.Best()
	if !ok || best.Coordinates == nil {
		return nil, false
	}
	return cloneCoords(best.Coordinates), true
}

// BestFoundAt returns the timestamp the best configuration was first
// recorded at, and true, or false if no valid cost has ever been recorded.
func (td *TuningData) BestFoundAt() (time.Time, bool) {
	best, ok := td.Best()
	if !ok {
		return time.Time{}, false
	}
	return best.Timestamp, true
}

// WallTimeToBest returns how long after StartTime the best configuration
// was first found, and true, or false if no valid cost has ever been
// recorded.
func (td *TuningData) WallTimeToBest() (time.Duration, bool) {
	at, ok := td.BestFoundAt()
	if !ok {
		return 0, false
	}
	return at.Sub(td.StartTime()), true
}

// EvaluationsToBest returns the 1-based count of configurations evaluated
// (valid or invalid) up to and including the one that first achieved the
// best cost, and true, or false if no valid cost has ever been recorded.
func (td *TuningData) EvaluationsToBest() (int, bool) {
	best, ok := td.Best()
	if !ok {
		return 0, false
	}
	return best.EvaluationIndex, true
}
