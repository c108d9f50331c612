package searchspace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autotune/parameter"
)

// IndexToConfig maps a flat index in [0, Size()) to the configuration it
// denotes. idx is decomposed into per-group local indices by
// mixed-radix division against each group's leaf count (most-significant
// group first, in declared group order); each local index then descends
// its group's tree, subtracting each candidate child's subtree leaf count
// from the running index until the owning child is found.
func (sp *SearchSpace) IndexToConfig(idx int64) (parameter.Configuration, error) {
	if idx < 0 || idx >= sp.size {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, sp.size)
	}

	weights := suffixProducts(sp.groupLeafCounts())
	cfg := make(parameter.Configuration, len(sp.params))

	remaining := idx
	for i, tree := range sp.trees {
		localIdx := remaining / weights[i]
		remaining = remaining % weights[i]
		descendIndex(sp.groups[i], tree.root.children, 0, localIdx, cfg)
	}

	return cfg, nil
}

// descendIndex finds the leaf at position idx within nodes (the children of
// the current level's parent) and records every bound value along the path
// into cfg, recursing one level per group parameter.
func descendIndex(groupParams []parameter.Parameter, nodes []*node, level int, idx int64, cfg parameter.Configuration) {
	for _, c := range nodes {
		if idx < c.leaves {
			cfg[groupParams[level].Name] = c.value
			if c.children != nil {
				descendIndex(groupParams, c.children, level+1, idx, cfg)
			}
			return
		}
		idx -= c.leaves
	}
	// Unreachable when idx was produced by a valid mixed-radix
	// decomposition: the sum of every child's leaves at this level always
	// equals the parent's own leaf count.
}

// ConfigToIndex is the inverse of IndexToConfig: it recovers the flat index
// a full, valid Configuration corresponds to, by walking each group's tree
// comparing bound values and accumulating the leaf count of every
// preceding sibling, then recombining per-group local indices via the same
// mixed-radix weights used by IndexToConfig.
//
// Returns ErrConfigurationMismatch if cfg does not correspond to any leaf
// (e.g. a value pruned by a constraint, or absent from its range).
func (sp *SearchSpace) ConfigToIndex(cfg parameter.Configuration) (int64, error) {
	weights := suffixProducts(sp.groupLeafCounts())

	var idx int64
	for i, tree := range sp.trees {
		local, err := groupConfigIndex(sp.groups[i], tree.root.children, 0, cfg)
		if err != nil {
			return 0, err
		}
		idx += local * weights[i]
	}

	return idx, nil
}

// groupConfigIndex computes the rank, among this group's leaves, of the
// leaf matching cfg's bound values, by accumulating preceding siblings'
// leaf counts at every level of the descent.
func groupConfigIndex(groupParams []parameter.Parameter, nodes []*node, level int, cfg parameter.Configuration) (int64, error) {
	name := groupParams[level].Name
	want, ok := cfg[name]
	if !ok {
		return 0, fmt.Errorf("%w: configuration is missing %q", ErrConfigurationMismatch, name)
	}

	var precedingLeaves int64
	for _, c := range nodes {
		if c.value.Equal(want) {
			if c.children == nil {
				return precedingLeaves, nil
			}
			sub, err := groupConfigIndex(groupParams, c.children, level+1, cfg)
			if err != nil {
				return 0, err
			}
			return precedingLeaves + sub, nil
		}
		precedingLeaves += c.leaves
	}

	return 0, fmt.Errorf("%w: %q=%#v is not a valid child at this position", ErrConfigurationMismatch, name, want)
}

// CoordToConfig maps a coordinate in (0,1]^D to the configuration it
// denotes. Coordinate c_k, for the parameter at declared
// position k, selects the ⌈c_k·n_k⌉-th valid child (1-based, then
// converted to 0-based and clamped) at the current node of level k, where
// n_k is the number of valid children at that node given the path chosen
// for levels < k. The result is valid by construction: every selected
// child already satisfied its parameter's constraint during tree
// construction.
func (sp *SearchSpace) CoordToConfig(coords []float64) (parameter.Configuration, error) {
	if len(coords) != len(sp.params) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrCoordinateDimension, len(sp.params), len(coords))
	}
	for _, c := range coords {
		if c <= 0 || c > 1 {
			return nil, fmt.Errorf("%w: %v", ErrCoordinateRange, c)
		}
	}

	cfg := make(parameter.Configuration, len(sp.params))
	pos := 0
	for i, tree := range sp.trees {
		groupParams := sp.groups[i]
		nodes := tree.root.children
		for level := range groupParams {
			c := coords[pos]
			n := len(nodes)
			childIdx := int(math.Ceil(c*float64(n))) - 1
			if childIdx < 0 {
				childIdx = 0
			}
			if childIdx >= n {
				childIdx = n - 1
			}
			chosen := nodes[childIdx]
			cfg[groupParams[level].Name] = chosen.value
			nodes = chosen.children
			pos++
		}
	}

	return cfg, nil
}

// suffixProducts returns, for each position i, the product of counts[i+1:]
// — the mixed-radix weight of group i when groups are ordered
// most-significant first.
func suffixProducts(counts []int64) []int64 {
	weights := make([]int64, len(counts))
	product := int64(1)
	for i := len(counts) - 1; i >= 0; i-- {
		weights[i] = product
		product *= counts[i]
	}
	return weights
}
