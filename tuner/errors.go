package tuner

import "errors"

// Sentinel errors for tuner configuration and execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tuner: invalid option supplied")

	// ErrCostFunction wraps any cost-function failure other than
	// cost.ErrInvalidConfiguration: the run
	// aborts and the underlying error is surfaced wrapped in this
	// sentinel.
	ErrCostFunction = errors.New("tuner: cost function failed")

	// ErrAlreadyTerminated is returned by Tune/MakeStep when called on a
	// Tuner whose state machine already reached Terminated — the
	// terminal state is write-once.
	ErrAlreadyTerminated = errors.New("tuner: run already terminated")
)
