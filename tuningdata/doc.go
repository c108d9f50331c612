// Package tuningdata is the read-only summary of a tuning run: the
// declared parameters, search-space sizes, timing, the full evaluation
// history and its improving subsequence, and the derived queries built on
// top of them (best configuration, its cost, index, coordinates, and how
// long it took to find).
//
// TuningData is built once per run by the tuner package and mutated
// exclusively by the orchestrator; every exported method here is a
// read-only query safe to call at any point in the run, including after
// early termination.
package tuningdata
