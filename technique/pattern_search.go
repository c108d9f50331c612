package technique

import "github.com/katalvlaran/autotune/cost"

// PatternSearch is a minimal Torczon-style coordinate-space pattern
// search: it holds a current best point and a step size, proposes the
// point's axis-aligned ± neighbors, moves to the best improving neighbor
// if any, and otherwise contracts the step. It terminates (NextCoordinates
// returns nil) once the step shrinks below MinStep.
//
// This is a worked example of the coordinate-space contract, not a
// production optimizer — Torczon is a classic
// techniques treated as external collaborators.
type PatternSearch struct {
	step, shrink, minStep float64

	d               int
	current         Coordinate
	currentCost     cost.Cost
	haveCurrentCost bool
	pending         []Coordinate
}

// PatternSearchOption configures a PatternSearch before use.
type PatternSearchOption func(*PatternSearch)

// WithInitialStep sets the starting step size (default 0.25).
func WithInitialStep(step float64) PatternSearchOption {
	return func(p *PatternSearch) {
		if step > 0 {
			p.step = step
		}
	}
}

// WithShrinkFactor sets the contraction factor applied on a step with no
// improving neighbor (default 0.5). Must be in (0,1).
func WithShrinkFactor(shrink float64) PatternSearchOption {
	return func(p *PatternSearch) {
		if shrink > 0 && shrink < 1 {
			p.shrink = shrink
		}
	}
}

// WithMinStep sets the step size below which the search considers itself
// converged and stops proposing further points (default 1e-6).
func WithMinStep(minStep float64) PatternSearchOption {
	return func(p *PatternSearch) {
		if minStep > 0 {
			p.minStep = minStep
		}
	}
}

// NewPatternSearch constructs a PatternSearch with the given options
// applied.
func NewPatternSearch(opts ...PatternSearchOption) *PatternSearch {
	p := &PatternSearch{step: 0.25, shrink: 0.5, minStep: 1e-6}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initialize implements technique.CoordinateTechnique, starting the search
// at the cube's center.
func (p *PatternSearch) Initialize(d int) {
	p.d = d
	p.current = make(Coordinate, d)
	for i := range p.current {
		p.current[i] = 0.5
	}
}

// Finalize implements technique.CoordinateTechnique.
func (p *PatternSearch) Finalize() {}

// NextCoordinates implements technique.CoordinateTechnique.
func (p *PatternSearch) NextCoordinates() []Coordinate {
	if !p.haveCurrentCost {
		p.pending = []Coordinate{cloneCoordinate(p.current)}
		return p.pending
	}
	if p.step < p.minStep {
		return nil
	}

	neighbors := make([]Coordinate, 0, 2*p.d)
	for axis := 0; axis < p.d; axis++ {
		plus := cloneCoordinate(p.current)
		plus[axis] = clampUnit(plus[axis] + p.step)
		minus := cloneCoordinate(p.current)
		minus[axis] = clampUnit(minus[axis] - p.step)
		neighbors = append(neighbors, plus, minus)
	}
	p.pending = neighbors
	return neighbors
}

// ReportCosts implements technique.CoordinateTechnique.
func (p *PatternSearch) ReportCosts(costs map[string]cost.Cost) {
	if !p.haveCurrentCost {
		p.currentCost = costs[CoordinateKey(p.pending[0])]
		p.haveCurrentCost = true
		return
	}

	bestCoord, bestCost, improved := p.current, p.currentCost, false
	for _, n := range p.pending {
		c, ok := costs[CoordinateKey(n)]
		if ok && c < bestCost {
			bestCoord, bestCost, improved = n, c, true
		}
	}
	if improved {
		p.current, p.currentCost = bestCoord, bestCost
	} else {
		p.step *= p.shrink
	}
}

func cloneCoordinate(c Coordinate) Coordinate {
	cp := make(Coordinate, len(c))
	copy(cp, c)
	return cp
}

// clampUnit clamps v into (0,1], never letting it reach or cross 0 — the
// coordinate cube's convention excludes zero.
func clampUnit(v float64) float64 {
	const epsilon = 1e-9
	if v <= 0 {
		return epsilon
	}
	if v > 1 {
		return 1
	}
	return v
}
