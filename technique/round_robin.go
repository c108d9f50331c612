package technique

import "github.com/katalvlaran/autotune/cost"

// RoundRobin is the natural default IndexTechnique: it proposes indices
// 0,1,2,… in order, batch-size at a time, never wrapping, and ignores
// reported costs entirely — it simply walks the whole index space once.
// Combined with the Evaluations(|SP|) default abort condition, it realizes
// exhaustive search.
type RoundRobin struct {
	batchSize int
	size      int64
	next      int64
	ready     bool
}

// RoundRobinOption configures a RoundRobin before use.
type RoundRobinOption func(*RoundRobin)

// WithBatchSize sets how many indices RoundRobin proposes per step.
// Non-positive values are ignored; the default batch size is 1.
func WithBatchSize(n int) RoundRobinOption {
	return func(r *RoundRobin) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// NewRoundRobin constructs a RoundRobin with the given options applied.
func NewRoundRobin(opts ...RoundRobinOption) *RoundRobin {
	r := &RoundRobin{batchSize: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize implements technique.IndexTechnique.
func (r *RoundRobin) Initialize(size int64) {
	r.size = size
	r.next = 0
	r.ready = true
}

// Finalize implements technique.IndexTechnique.
func (r *RoundRobin) Finalize() { r.ready = false }

// NextIndices implements technique.IndexTechnique.
func (r *RoundRobin) NextIndices() []int64 {
	if !r.ready || r.next >= r.size {
		return nil
	}
	end := r.next + int64(r.batchSize)
	if end > r.size {
		end = r.size
	}
	out := make([]int64, 0, end-r.next)
	for i := r.next; i < end; i++ {
		out = append(out, i)
	}
	r.next = end
	return out
}

// ReportCosts implements technique.IndexTechnique. RoundRobin's proposal
// order never depends on feedback, so this is a no-op.
func (r *RoundRobin) ReportCosts(map[int64]cost.Cost) {}
