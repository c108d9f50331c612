// Package abort defines the abort-condition interface the orchestrator
// consults between evaluations, its logical combinators, and a handful
// of concrete kinds: Evaluations, Fraction, Duration, Cost, and Speedup
// (trailing-window stall detection, either by wall-clock duration or by
// evaluation count).
//
// A Condition is a predicate over a tuningdata.TuningData snapshot; the
// orchestrator evaluates it after every batch of reported costs and stops the run,
// setting TerminatedEarly, the first time it returns true.
package abort
