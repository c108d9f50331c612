package searchspace

import "github.com/katalvlaran/autotune/parameter"

// node is one level of a group's prefix tree: a value that has already
// satisfied its parameter's constraint, plus the children enumerating
// valid values for the next parameter in the group.
//
// leaves caches the number of fully-valid group assignments reachable from
// this node (its own subtree's leaf count), so descent by index costs
// O(branching) per level instead of a full subtree walk.
type node struct {
	value    parameter.Value
	children []*node
	leaves   int64
}

// groupTree is the prefix tree for one maximal contiguous dependency group.
// root is a virtual node whose children are the valid values for the
// group's first parameter; root.leaves is the group's total leaf count.
type groupTree struct {
	params []parameter.Parameter
	root   *node
}

func (t *groupTree) leaves() int64 {
	if t.root == nil {
		return 0
	}
	return t.root.leaves
}

// buildGroupTree runs the depth-first enumeration of the group tree:
// at level k, try each candidate value of params[k]'s range in declared
// order, evaluate its constraint against the path bound so far, and recurse
// on success. A node is kept only if it has a nonzero leaf count (i.e. the
// deepest level, or at least one surviving child).
func buildGroupTree(params []parameter.Parameter) *groupTree {
	bound := make(map[string]parameter.Value, len(params))
	children := buildLevel(params, 0, bound)

	var total int64
	for _, c := range children {
		total += c.leaves
	}

	return &groupTree{
		params: params,
		root:   &node{children: children, leaves: total},
	}
}

// buildLevel enumerates the valid children of params[level] given the
// values already bound for params[:level], returning only nodes with a
// nonzero leaf count.
func buildLevel(params []parameter.Parameter, level int, bound map[string]parameter.Value) []*node {
	p := params[level]
	size := p.Range.Size()
	nodes := make([]*node, 0, size)

	last := level+1 == len(params)

	for i := int64(0); i < size; i++ {
		v := p.Range.At(i)
		bound[p.Name] = v
		if !p.Satisfies(bound) {
			continue
		}

		n := &node{value: v}
		if last {
			n.leaves = 1
		} else {
			n.children = buildLevel(params, level+1, bound)
			for _, c := range n.children {
				n.leaves += c.leaves
			}
			if n.leaves == 0 {
				continue // every descendant pruned: drop this branch entirely
			}
		}
		nodes = append(nodes, n)
	}
	delete(bound, p.Name)

	return nodes
}
