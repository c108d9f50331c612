// Package technique defines the search-technique abstraction the tuner
// drives: a conforming type proposes candidate points each step and
// receives their costs back, in one of two shapes.
//
//   - IndexTechnique operates in index space [0,|SP|): Initialize(size),
//     NextIndices() proposes a batch of indices, ReportCosts(map[int64]Cost)
//     returns exactly that batch's outcomes.
//   - CoordinateTechnique operates in coordinate space (0,1]^D:
//     Initialize(d), NextCoordinates() proposes a batch of D-tuples,
//     ReportCosts(map[string]Cost) returns exactly that batch's outcomes,
//     keyed by CoordinateKey since Go map keys cannot be slices directly.
//
// Implementations may propose any number of points per step (including
// zero, to signal it has no further candidates, or the population is
// exhausted), and may hold arbitrary private state between calls; the
// orchestrator never assumes an ordering on the returned maps.
//
// This package also ships three reference implementations —
// RoundRobin (index-space), RandomSearch and PatternSearch
// (coordinate-space) — so the interfaces have working, testable occupants;
// production search algorithms (simulated annealing, differential
// evolution, AUC-bandit, …) are external collaborators conforming to the
// same two shapes.
package technique
