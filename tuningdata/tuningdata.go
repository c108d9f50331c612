package tuningdata

import (
	"sync"
	"time"

	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/parameter"
)

// Entry is one recorded evaluation: a timestamp, the configuration that was
// evaluated, and either a valid Cost or an Invalid marker. Index is the
// search-space index the configuration was mapped from/to, always
// populated. Coordinates holds the proposing technique's raw coordinate
// tuple when the evaluation was proposed by a coordinate-space technique,
// and is nil otherwise.
type Entry struct {
	Timestamp     time.Time
	Configuration parameter.Configuration
	Cost          cost.Cost
	Invalid       bool
	Index         int64
	Coordinates   []float64
}

// ImprovementEntry is a History Entry at which the best-so-far cost
// strictly decreased, annotated with its 1-based position in History (the
// number of configurations evaluated, valid or invalid, at the moment this
// improvement was recorded).
type ImprovementEntry struct {
	Entry
	EvaluationIndex int
}

// TuningData accumulates across a run and exposes read-only derived
// queries. The zero value is not usable; construct with New.
type TuningData struct {
	mu sync.RWMutex

	parameters        []parameter.Parameter
	searchSpaceSize   int64
	unconstrainedSize int64
	generationTime    time.Duration
	techniqueID       string
	abortConditionID  string
	startTime         time.Time

	terminatedEarly    bool
	history            []Entry
	improvementHistory []ImprovementEntry
	evaluatedValid     int
	evaluatedInvalid   int
}

// New constructs an empty TuningData for a run over params, with the given
// search-space sizes, the time spent generating the search space, and
// identifiers for the chosen technique and abort condition (free-form,
// used only for logging and introspection).
func New(params []parameter.Parameter, searchSpaceSize, unconstrainedSize int64, generationTime time.Duration, techniqueID, abortConditionID string) *TuningData {
	cp := make([]parameter.Parameter, len(params))
	copy(cp, params)
	return &TuningData{
		parameters:        cp,
		searchSpaceSize:   searchSpaceSize,
		unconstrainedSize: unconstrainedSize,
		generationTime:    generationTime,
		techniqueID:       techniqueID,
		abortConditionID:  abortConditionID,
		startTime:         time.Now(),
	}
}

// RecordValid appends a valid evaluation to History, updating
// ImprovementHistory if cost strictly improves on the previous best.
func (td *TuningData) RecordValid(cfg parameter.Configuration, idx int64, coords []float64, c cost.Cost, at time.Time) {
	td.mu.Lock()
	defer td.mu.Unlock()

	entry := Entry{Timestamp: at, Configuration: cfg.Clone(), Cost: c, Index: idx, Coordinates: cloneCoords(coords)}
	td.history = append(td.history, entry)
	td.evaluatedValid++

	if len(td.improvementHistory) == 0 || c < td.improvementHistory[len(td.improvementHistory)-1].Cost {
		td.improvementHistory = append(td.improvementHistory, ImprovementEntry{
			Entry:           entry,
			EvaluationIndex: len(td.history),
		})
	}
}

// RecordInvalid appends an invalid-marker evaluation to History. penalty is the
// penalty cost assigned to the technique, recorded for diagnostic purposes
// only — it never participates in best-so-far comparisons.
func (td *TuningData) RecordInvalid(cfg parameter.Configuration, idx int64, coords []float64, penalty cost.Cost, at time.Time) {
	td.mu.Lock()
	defer td.mu.Unlock()

	td.history = append(td.history, Entry{
		Timestamp:     at,
		Configuration: cfg.Clone(),
		Cost:          penalty,
		Invalid:       true,
		Index:         idx,
		Coordinates:   cloneCoords(coords),
	})
	td.evaluatedInvalid++
}

// MarkTerminatedEarly sets the write-once terminated-early flag.
func (td *TuningData) MarkTerminatedEarly() {
	td.mu.Lock()
	defer td.mu.Unlock()
	td.terminatedEarly = true
}

func cloneCoords(coords []float64) []float64 {
	if coords == nil {
		return nil
	}
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return cp
}

// Parameters returns the declared parameter list, in declared order.
func (td *TuningData) Parameters() []parameter.Parameter {
	td.mu.RLock()
	defer td.mu.RUnlock()
	cp := make([]parameter.Parameter, len(td.parameters))
	copy(cp, td.parameters)
	return cp
}

// SearchSpaceSize returns |SP|, the constrained search-space size.
func (td *TuningData) SearchSpaceSize() int64 {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.searchSpaceSize
}

// UnconstrainedSize returns ∏|range_i|, ignoring constraints.
func (td *TuningData) UnconstrainedSize() int64 {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.unconstrainedSize
}

// GenerationTime returns how long building the search space took.
func (td *TuningData) GenerationTime() time.Duration {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.generationTime
}

// TechniqueID returns the configured search technique's identifier.
func (td *TuningData) TechniqueID() string {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.techniqueID
}

// AbortConditionID returns the configured abort condition's identifier.
func (td *TuningData) AbortConditionID() string {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.abortConditionID
}

// SetAbortConditionID records the abort condition's identifier. The
// orchestrator calls this once a run starts, since the concrete abort
// condition (and thus its ID) is only known at Tune-time, after the
// TuningData itself was constructed.
func (td *TuningData) SetAbortConditionID(id string) {
	td.mu.Lock()
	defer td.mu.Unlock()
	td.abortConditionID = id
}

// StartTime returns when the run began.
func (td *TuningData) StartTime() time.Time {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.startTime
}

// TerminatedEarly reports whether the run was cut short by its abort
// condition, a cost-function error, or external cancellation. A run that
// ends on search-space exhaustion, or because the technique has no further
// candidates, is not marked.
func (td *TuningData) TerminatedEarly() bool {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.terminatedEarly
}

// History returns every recorded evaluation, in evaluation order.
func (td *TuningData) History() []Entry {
	td.mu.RLock()
	defer td.mu.RUnlock()
	cp := make([]Entry, len(td.history))
	copy(cp, td.history)
	return cp
}

// ImprovementHistory returns the subsequence of History at which the
// best-so-far cost strictly decreased.
func (td *TuningData) ImprovementHistory() []ImprovementEntry {
	td.mu.RLock()
	defer td.mu.RUnlock()
	cp := make([]ImprovementEntry, len(td.improvementHistory))
	copy(cp, td.improvementHistory)
	return cp
}

// EvaluatedValid returns the count of evaluations that returned a cost.
func (td *TuningData) EvaluatedValid() int {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.evaluatedValid
}

// EvaluatedInvalid returns the count of evaluations the cost function
// declared infeasible.
func (td *TuningData) EvaluatedInvalid() int {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.evaluatedInvalid
}

// EvaluatedConfigurations returns EvaluatedValid()+EvaluatedInvalid().
func (td *TuningData) EvaluatedConfigurations() int {
	td.mu.RLock()
	defer td.mu.RUnlock()
	return td.evaluatedValid + td.evaluatedInvalid
}
