package searchspace

import (
	"fmt"

	"github.com/katalvlaran/autotune/parameter"
)

// SearchSpace is the chain-of-trees representation of every valid
// configuration over an ordered parameter list: one prefix tree per
// maximal contiguous dependency group, plus the precomputed sizes needed to
// index and map the whole constrained product.
type SearchSpace struct {
	params            []parameter.Parameter
	groups            [][]parameter.Parameter
	trees             []*groupTree
	groupOffsets      []int // index into params where each group starts
	size              int64 // |SP|
	unconstrainedSize int64 // ∏|range_i|
}

// Generate builds the chain-of-trees for params and computes Size and
// UnconstrainedSize. params must already satisfy parameter.Validate's
// invariants (unique names, non-nil non-empty ranges, constraints
// referencing only earlier names); Generate re-validates and returns any
// violation wrapped as parameter.ErrConfiguration.
//
// Returns ErrEmptySearchSpace if any group's tree has zero leaves — the
// whole space is then empty and the caller must refuse to run.
func Generate(params []parameter.Parameter) (*SearchSpace, error) {
	if err := parameter.Validate(params); err != nil {
		return nil, err
	}

	groups := groupParameters(params)

	sp := &SearchSpace{
		params:            params,
		groups:            groups,
		trees:             make([]*groupTree, len(groups)),
		groupOffsets:      make([]int, len(groups)),
		size:              1,
		unconstrainedSize: 1,
	}

	offset := 0
	for i, g := range groups {
		sp.groupOffsets[i] = offset
		offset += len(g)

		t := buildGroupTree(g)
		sp.trees[i] = t
		if t.leaves() == 0 {
			return nil, fmt.Errorf("%w: group starting at parameter %q has no valid assignment", ErrEmptySearchSpace, g[0].Name)
		}
		sp.size *= t.leaves()
	}

	for _, p := range params {
		sp.unconstrainedSize *= p.Range.Size()
	}

	return sp, nil
}

// Size returns |SP|, the number of valid configurations.
func (sp *SearchSpace) Size() int64 { return sp.size }

// UnconstrainedSize returns ∏|range_i| across every declared parameter,
// ignoring constraints entirely.
func (sp *SearchSpace) UnconstrainedSize() int64 { return sp.unconstrainedSize }

// Dimensions returns D, the number of declared parameters — the
// dimensionality of the coordinate cube (0,1]^D.
func (sp *SearchSpace) Dimensions() int { return len(sp.params) }

// Parameters returns the declared parameter list, in declared order.
func (sp *SearchSpace) Parameters() []parameter.Parameter {
	cp := make([]parameter.Parameter, len(sp.params))
	copy(cp, sp.params)
	return cp
}

// groupLeafCounts returns the leaf count of every group's tree, in group
// order — used by the mixed-radix index mapping.
func (sp *SearchSpace) groupLeafCounts() []int64 {
	counts := make([]int64, len(sp.trees))
	for i, t := range sp.trees {
		counts[i] = t.leaves()
	}
	return counts
}
