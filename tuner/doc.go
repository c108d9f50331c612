// Package tuner implements the generic orchestrator: it wires
// a parameter list, a search technique, and an abort condition to a
// caller-supplied cost function, drives the propose/evaluate/report loop
// either to completion (Tune) or one batch at a time (MakeStep), and
// accumulates a tuningdata.TuningData the caller can query once the run
// ends.
//
// Logging uses a *logrus.Logger, one WithFields call per evaluation,
// silenced to logrus.ErrorLevel by WithSilent and optionally duplicated
// to a file by WithLogFile.
package tuner
