package searchspace

import "errors"

// ErrEmptySearchSpace indicates every path through at least one group's
// tree was pruned by constraints, leaving that group — and therefore the
// whole search space — with zero valid configurations.
var ErrEmptySearchSpace = errors.New("searchspace: search space is empty")

// ErrIndexOutOfRange indicates an index outside [0, Size()) was passed to
// IndexToConfig.
var ErrIndexOutOfRange = errors.New("searchspace: index out of range")

// ErrCoordinateDimension indicates a coordinate tuple whose length does not
// match the search space's parameter count.
var ErrCoordinateDimension = errors.New("searchspace: coordinate dimension mismatch")

// ErrCoordinateRange indicates a coordinate component outside (0,1].
var ErrCoordinateRange = errors.New("searchspace: coordinate component outside (0,1]")

// ErrConfigurationMismatch indicates ConfigToIndex was given a configuration
// that does not correspond to any leaf of the chain of trees (e.g. a value
// absent from its parameter's range, or one pruned by a constraint).
var ErrConfigurationMismatch = errors.New("searchspace: configuration matches no valid leaf")
