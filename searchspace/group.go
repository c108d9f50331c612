package searchspace

import "github.com/katalvlaran/autotune/parameter"

// groupParameters partitions an ordered, already-Validate'd parameter list
// into maximal contiguous groups of mutually dependent parameters.
//
// Rule: a new group
// starts at p_k iff no parameter at position ≥ k has a constraint referring
// to a name at a position < k within the current group. Equivalently: for
// every name, compute the furthest position (to the right) of any
// parameter whose constraint depends on it — call that its "reach". Sweep
// left to right accumulating the running maximum reach seen so far; a
// group closes whenever the current position equals that running maximum.
// This is the same sweep used to merge overlapping intervals / partition
// labels, applied to dependency reach instead of interval endpoints, and it
// produces the coarsest partition that keeps groups independent across each
// cut.
func groupParameters(params []parameter.Parameter) [][]parameter.Parameter {
	n := len(params)
	if n == 0 {
		return nil
	}

	posOf := make(map[string]int, n)
	for i, p := range params {
		posOf[p.Name] = i
	}

	// reach[i] = furthest position of a parameter depending on params[i].
	reach := make([]int, n)
	for i := range reach {
		reach[i] = i
	}
	for j, p := range params {
		for _, dep := range p.DependencySet() {
			i := posOf[dep]
			if reach[i] < j {
				reach[i] = j
			}
		}
	}

	var groups [][]parameter.Parameter
	start, end := 0, 0
	for k := 0; k < n; k++ {
		if reach[k] > end {
			end = reach[k]
		}
		if k == end {
			groups = append(groups, params[start:k+1])
			start = k + 1
		}
	}

	return groups
}
