package tuner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/autotune/abort"
	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/parameter"
	"github.com/katalvlaran/autotune/searchspace"
	"github.com/katalvlaran/autotune/technique"
	"github.com/katalvlaran/autotune/tuningdata"
)

// Tuner drives the request/report tuning loop. Construct with
// New, then either Tune (run to abort or exhaustion) or MakeStep
// (program-guided, one technique batch per call). Both share the same
// Configured -> Running -> Terminated state machine; Terminated is
// write-once.
type Tuner struct {
	space *searchspace.SearchSpace

	indexTechnique technique.IndexTechnique
	coordTechnique technique.CoordinateTechnique

	logger  *logrus.Logger
	logFile *os.File

	penaltyCost    cost.Cost
	penaltyCostSet bool
	worstValid     cost.Cost
	haveWorstValid bool

	data *tuningdata.TuningData

	state          State
	validCost      map[int64]cost.Cost
	evaluatedIndex map[int64]struct{}
}

// New constructs a Tuner for params, applying opts. It builds the
// constrained search space immediately, validating params per
// parameter.Validate along the way.
func New(params []parameter.Parameter, opts ...Option) (*Tuner, error) {
	oo := defaultOptions()
	for _, opt := range opts {
		opt(&oo)
	}
	if oo.err != nil {
		return nil, oo.err
	}

	genStart := time.Now()
	space, err := searchspace.Generate(params)
	if err != nil {
		return nil, err
	}
	generationTime := time.Since(genStart)

	logger, logFile, err := buildLogger(oo)
	if err != nil {
		return nil, err
	}

	techID := "index-technique"
	if oo.coordTechnique != nil {
		techID = "coordinate-technique"
	}

	t := &Tuner{
		space:          space,
		indexTechnique: oo.indexTechnique,
		coordTechnique: oo.coordTechnique,
		logger:         logger,
		logFile:        logFile,
		penaltyCost:    oo.penaltyCost,
		penaltyCostSet: oo.penaltyCostSet,
		state:          StateConfigured,
		validCost:      make(map[int64]cost.Cost),
		evaluatedIndex: make(map[int64]struct{}),
	}
	t.data = tuningdata.New(params, space.Size(), space.UnconstrainedSize(), generationTime, techID, "")

	return t, nil
}

// Data returns the tuner's read-only run summary. Safe to call at any
// point in the lifecycle, including mid-run and after a fatal error.
func (t *Tuner) Data() *tuningdata.TuningData {
	return t.data
}

// State returns the orchestrator's current lifecycle state.
func (t *Tuner) State() State {
	return t.state
}

// Close releases resources held by the tuner — currently, the log file
// opened by WithLogFile, if any.
func (t *Tuner) Close() error {
	if t.logFile == nil {
		return nil
	}
	return t.logFile.Close()
}

// Tune runs the propose/evaluate/report loop to completion: it stops on
// search-space exhaustion, abortCondition reporting true, a fatal
// cost-function error, or ctx cancellation. A nil abortCondition defaults
// to Evaluations(|SP|).
func (t *Tuner) Tune(ctx context.Context, costFn cost.Function, abortCondition abort.Condition) error {
	if t.state == StateTerminated {
		return ErrAlreadyTerminated
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if abortCondition == nil {
		abortCondition = abort.NewEvaluations(int(t.space.Size()))
	}
	t.data.SetAbortConditionID(abortCondition.ID())

	t.beginRun()
	defer t.finalizeTechnique()

	for {
		if err := ctx.Err(); err != nil {
			t.data.MarkTerminatedEarly()
			t.state = StateTerminated
			return err
		}

		proposed, err := t.step(costFn)
		if err != nil {
			t.data.MarkTerminatedEarly()
			t.state = StateTerminated
			return err
		}
		if proposed == 0 {
			// Technique has no further candidates: normal completion,
			// not an early termination.
			break
		}
		if int64(len(t.evaluatedIndex)) >= t.space.Size() {
			break
		}
		if abortCondition.Stop(t.data) {
			t.data.MarkTerminatedEarly()
			break
		}
	}

	t.state = StateTerminated
	return nil
}

// MakeStep advances the technique by exactly one proposal/evaluate/report
// batch, for program-guided tuning where the host drives the loop between
// calls. done reports whether the run has now terminated (exhaustion,
// technique exhaustion, or a fatal cost-function error, whose value is
// returned as err).
func (t *Tuner) MakeStep(costFn cost.Function) (done bool, err error) {
	if t.state == StateTerminated {
		return true, ErrAlreadyTerminated
	}
	if t.state == StateConfigured {
		t.beginRun()
	}

	proposed, stepErr := t.step(costFn)
	if stepErr != nil {
		t.data.MarkTerminatedEarly()
		t.state = StateTerminated
		t.finalizeTechnique()
		return true, stepErr
	}
	if proposed == 0 || int64(len(t.evaluatedIndex)) >= t.space.Size() {
		t.state = StateTerminated
		t.finalizeTechnique()
		return true, nil
	}

	return false, nil
}

func (t *Tuner) beginRun() {
	t.state = StateRunning
	if t.indexTechnique != nil {
		t.indexTechnique.Initialize(t.space.Size())
	} else {
		t.coordTechnique.Initialize(t.space.Dimensions())
	}
}

func (t *Tuner) finalizeTechnique() {
	if t.indexTechnique != nil {
		t.indexTechnique.Finalize()
	} else {
		t.coordTechnique.Finalize()
	}
}

// step runs exactly one propose/evaluate/report cycle and returns the
// number of proposals the technique returned (0 meaning it has nothing
// further to offer). A non-nil error is a fatal cost-function failure;
// the caller is responsible for terminating the run.
func (t *Tuner) step(costFn cost.Function) (int, error) {
	if t.indexTechnique != nil {
		return t.stepIndex(costFn)
	}
	return t.stepCoordinate(costFn)
}

func (t *Tuner) stepIndex(costFn cost.Function) (int, error) {
	batch := t.indexTechnique.NextIndices()
	if len(batch) == 0 {
		return 0, nil
	}

	report := make(map[int64]cost.Cost, len(batch))
	for _, idx := range batch {
		cfg, err := t.space.IndexToConfig(idx)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCostFunction, err)
		}

		c, evalErr := t.evaluate(cfg, idx, nil, costFn)
		if evalErr != nil {
			return 0, evalErr
		}
		report[idx] = c
	}
	t.indexTechnique.ReportCosts(report)

	return len(batch), nil
}

func (t *Tuner) stepCoordinate(costFn cost.Function) (int, error) {
	batch := t.coordTechnique.NextCoordinates()
	if len(batch) == 0 {
		return 0, nil
	}

	report := make(map[string]cost.Cost, len(batch))
	for _, coord := range batch {
		cfg, err := t.space.CoordToConfig(coord)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCostFunction, err)
		}
		idx, err := t.space.ConfigToIndex(cfg)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCostFunction, err)
		}

		c, evalErr := t.evaluate(cfg, idx, []float64(coord), costFn)
		if evalErr != nil {
			return 0, evalErr
		}
		report[technique.CoordinateKey(coord)] = c
	}
	t.coordTechnique.ReportCosts(report)

	return len(batch), nil
}

// evaluate handles one distinct configuration: skipping re-evaluation of
// indices with an already-recorded valid cost, invoking costFn otherwise,
// and recording the outcome. Invalid configurations are re-queried on
// every proposal, since they carry no recorded cost.
func (t *Tuner) evaluate(cfg parameter.Configuration, idx int64, coords []float64, costFn cost.Function) (cost.Cost, error) {
	t.evaluatedIndex[idx] = struct{}{}

	if c, ok := t.validCost[idx]; ok {
		return c, nil
	}

	now := time.Now()
	c, err := costFn(cfg)
	if err == nil {
		t.validCost[idx] = c
		if !t.haveWorstValid || c > t.worstValid {
			t.worstValid = c
			t.haveWorstValid = true
		}
		t.data.RecordValid(cfg, idx, coords, c, now)
		logEvaluation(t.logger, cfg, idx, float64(c), false)
		return c, nil
	}

	if cost.IsInvalidConfiguration(err) {
		penalty := t.penalty()
		t.data.RecordInvalid(cfg, idx, coords, penalty, now)
		logEvaluation(t.logger, cfg, idx, float64(penalty), true)
		return penalty, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrCostFunction, err)
}

// penalty computes the cost reported to the technique for an invalid
// configuration: an explicit WithPenaltyCost override if set,
// otherwise the largest valid cost observed so far, or cost.DefaultPenalty
// if none has been recorded yet.
func (t *Tuner) penalty() cost.Cost {
	if t.penaltyCostSet {
		return t.penaltyCost
	}
	if t.haveWorstValid {
		return t.worstValid
	}
	return cost.DefaultPenalty
}
