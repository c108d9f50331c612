package parameter

import (
	"fmt"
)

// ErrEmptyRange indicates a Range whose Size() is zero.
var ErrEmptyRange = fmt.Errorf("%w: range is empty", ErrConfiguration)

// Range is a lazy, enumerable, homogeneous sequence of candidate values for
// a single parameter. Implementations must be total and deterministic: the
// same index always yields the same Value, in the declared enumeration
// order used by At(0), At(1), ….
type Range interface {
	// Size reports the number of values in the range. Size is always
	// finite and non-negative.
	Size() int64

	// At returns the zero-based i-th value. At panics if i is outside
	// [0, Size()) — callers within this module always range-check first;
	// out-of-range access here indicates a programmer error, not a
	// reportable condition.
	At(i int64) Value

	// Kind reports the domain type every value in the range carries.
	Kind() Kind
}

// IntervalRange is an arithmetic sequence min, min+step, …, running up to
// and including the largest term ≤ max. Size = ⌊(max−min)/step⌋+1.
//
// If Generator is non-nil, At(i) returns Generator(min + i*step) instead of
// the raw arithmetic term, letting a parameter's range be backed by, e.g., a
// lookup table keyed by an otherwise-uniform index stride.
type IntervalRange struct {
	Min, Max, Step int64
	Generator      func(v int64) Value
}

// NewIntervalRange constructs an IntervalRange, validating that step is
// positive and that min ≤ max. Returns ErrEmptyRange if no term fits.
func NewIntervalRange(min, max, step int64) (IntervalRange, error) {
	return newIntervalRange(min, max, step, nil)
}

// NewGeneratedIntervalRange is NewIntervalRange with a generator applied to
// each arithmetic term before it is returned from At.
func NewGeneratedIntervalRange(min, max, step int64, generator func(v int64) Value) (IntervalRange, error) {
	if generator == nil {
		return IntervalRange{}, fmt.Errorf("parameter: generator must not be nil")
	}
	return newIntervalRange(min, max, step, generator)
}

func newIntervalRange(min, max, step int64, generator func(v int64) Value) (IntervalRange, error) {
	if step <= 0 {
		return IntervalRange{}, fmt.Errorf("parameter: step must be positive, got %d", step)
	}
	if min > max {
		return IntervalRange{}, ErrEmptyRange
	}
	return IntervalRange{Min: min, Max: max, Step: step, Generator: generator}, nil
}

// Size implements Range.
func (r IntervalRange) Size() int64 {
	if r.Min > r.Max || r.Step <= 0 {
		return 0
	}
	return (r.Max-r.Min)/r.Step + 1
}

// At implements Range.
func (r IntervalRange) At(i int64) Value {
	if i < 0 || i >= r.Size() {
		panic(fmt.Sprintf("parameter: IntervalRange.At(%d) outside [0,%d)", i, r.Size()))
	}
	term := r.Min + i*r.Step
	if r.Generator != nil {
		return r.Generator(term)
	}
	return IntValue(term)
}

// Kind implements Range. A generated IntervalRange reports KindInt for the
// underlying arithmetic term unless the first generated value says
// otherwise; callers that generate non-int values should wrap the result in
// a SetRange instead, since Kind must be static and homogeneous.
func (r IntervalRange) Kind() Kind {
	if r.Generator != nil && r.Size() > 0 {
		return r.Generator(r.Min).Kind()
	}
	return KindInt
}

// SetRange is an explicit, finite list of values enumerated in declaration
// order. All values must share the same Kind.
type SetRange struct {
	values []Value
}

// NewSetRange builds a SetRange over values, preserving order. Returns
// ErrEmptyRange if values is empty, or an error if values mix Kinds.
func NewSetRange(values ...Value) (SetRange, error) {
	if len(values) == 0 {
		return SetRange{}, ErrEmptyRange
	}
	kind := values[0].Kind()
	for _, v := range values[1:] {
		if v.Kind() != kind {
			return SetRange{}, fmt.Errorf("parameter: set range mixes kinds %s and %s", kind, v.Kind())
		}
	}
	cp := make([]Value, len(values))
	copy(cp, values)
	return SetRange{values: cp}, nil
}

// Size implements Range.
func (r SetRange) Size() int64 { return int64(len(r.values)) }

// At implements Range.
func (r SetRange) At(i int64) Value { return r.values[i] }

// Kind implements Range.
func (r SetRange) Kind() Kind {
	if len(r.values) == 0 {
		return KindInt
	}
	return r.values[0].Kind()
}

// IntSetRange is a convenience constructor for a SetRange of int64 values.
func IntSetRange(values ...int64) (SetRange, error) {
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = IntValue(v)
	}
	return NewSetRange(vs...)
}

// StringSetRange is a convenience constructor for a SetRange of strings.
func StringSetRange(values ...string) (SetRange, error) {
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = StringValue(v)
	}
	return NewSetRange(vs...)
}
