package tuner

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/technique"
)

// Option configures a Tuner via functional arguments. If an Option is
// invalid, it is recorded internally and surfaced as ErrOptionViolation
// when New is called, deferring the error to the point options are
// applied rather than to each individual option call.
type Option func(*options)

type options struct {
	indexTechnique technique.IndexTechnique
	coordTechnique technique.CoordinateTechnique
	silent         bool
	logFile        string
	logger         *logrus.Logger
	penaltyCost    cost.Cost
	penaltyCostSet bool
	err            error
}

func defaultOptions() options {
	return options{
		indexTechnique: technique.NewRoundRobin(),
	}
}

// WithTechnique selects the search technique driving the run. t must
// implement either technique.IndexTechnique or technique.CoordinateTechnique;
// anything else is recorded as an option violation.
func WithTechnique(t interface{}) Option {
	return func(o *options) {
		switch tech := t.(type) {
		case technique.IndexTechnique:
			o.indexTechnique = tech
			o.coordTechnique = nil
		case technique.CoordinateTechnique:
			o.coordTechnique = tech
			o.indexTechnique = nil
		default:
			o.err = fmt.Errorf("%w: %T implements neither IndexTechnique nor CoordinateTechnique", ErrOptionViolation, t)
		}
	}
}

// WithSilent suppresses progress logging by raising the logger's level to
// logrus.ErrorLevel.
func WithSilent(silent bool) Option {
	return func(o *options) {
		o.silent = silent
	}
}

// WithLogFile appends the run log to path, in addition to the logger's
// existing output.
func WithLogFile(path string) Option {
	return func(o *options) {
		if path == "" {
			o.err = fmt.Errorf("%w: log file path must not be empty", ErrOptionViolation)
			return
		}
		o.logFile = path
	}
}

// WithLogger injects a caller-owned *logrus.Logger, for embedding the
// tuner's evaluation log into a larger application's logging setup. A
// nil logger is ignored rather than clearing the default.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPenaltyCost overrides the computed penalty cost with an explicit
// value, applied to every invalid configuration for the lifetime of the
// run.
func WithPenaltyCost(c cost.Cost) Option {
	return func(o *options) {
		o.penaltyCost = c
		o.penaltyCostSet = true
	}
}
