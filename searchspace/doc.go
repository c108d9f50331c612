// Package searchspace builds and indexes the constrained Cartesian product
// of a parameter list's ranges: the "chain-of-trees" representation.
//
// Parameters are partitioned into maximal contiguous groups of mutually
// dependent parameters (the coarsest partition that keeps the groups
// independent across each cut — see Generate's doc comment for the exact
// rule). Each group gets its own prefix tree: a node at level k is a value
// that satisfies the k-th parameter's constraint given the path above it;
// children enumerate valid values for the next parameter. Leaves are fully
// valid group assignments, and every node caches the leaf count of its own
// subtree so indexing a node's k-th leaf costs O(branching) rather than a
// full subtree walk.
//
// The resulting SearchSpace exposes the whole constrained product two ways:
//
//   - as a flat index in [0, Size()), via IndexToConfig / ConfigToIndex —
//     a mixed-radix decomposition across groups, then a tree descent within
//     each group;
//   - as a continuous coordinate in (0,1]^D, via CoordToConfig, where D is
//     the number of parameters — each coordinate selects a child at its
//     level by ⌈c·n⌉, so coordinates always yield a valid configuration.
//
// Construction enumerates only the valid configurations of each group, not
// the unconstrained product across groups, so memory is proportional to the
// total number of valid per-group assignments rather than to Size().
package searchspace
