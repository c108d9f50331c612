package technique

import (
	"math/rand"

	"github.com/katalvlaran/autotune/cost"
)

// RandomSearch is a CoordinateTechnique that proposes uniformly random
// points in (0,1]^D, batch-size at a time, using a seeded *rand.Rand so
// that the same seed always reproduces the same evaluation history.
type RandomSearch struct {
	rng       *rand.Rand
	batchSize int
	d         int
}

// RandomSearchOption configures a RandomSearch before use.
type RandomSearchOption func(*RandomSearch)

// WithSeed seeds the RandomSearch's RNG deterministically.
func WithSeed(seed int64) RandomSearchOption {
	return func(r *RandomSearch) { r.rng = rand.New(rand.NewSource(seed)) }
}

// WithRandomBatchSize sets how many coordinates RandomSearch proposes per
// step. Non-positive values are ignored; the default batch size is 1.
func WithRandomBatchSize(n int) RandomSearchOption {
	return func(r *RandomSearch) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// NewRandomSearch constructs a RandomSearch with the given options
// applied. Without WithSeed, the RNG is seeded with a value drawn from
// math/rand's global source, so such runs are not reproducible.
func NewRandomSearch(opts ...RandomSearchOption) *RandomSearch {
	r := &RandomSearch{batchSize: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return r
}

// Initialize implements technique.CoordinateTechnique.
func (r *RandomSearch) Initialize(d int) { r.d = d }

// Finalize implements technique.CoordinateTechnique.
func (r *RandomSearch) Finalize() {}

// NextCoordinates implements technique.CoordinateTechnique. RandomSearch
// never terminates on its own; an abort condition must end the run.
func (r *RandomSearch) NextCoordinates() []Coordinate {
	out := make([]Coordinate, r.batchSize)
	for i := range out {
		c := make(Coordinate, r.d)
		for j := range c {
			// rand.Float64 is in [0,1); 1-x maps it onto (0,1].
			c[j] = 1 - r.rng.Float64()
		}
		out[i] = c
	}
	return out
}

// ReportCosts implements technique.CoordinateTechnique. RandomSearch's
// proposals never depend on feedback, so this is a no-op.
func (r *RandomSearch) ReportCosts(map[string]cost.Cost) {}
