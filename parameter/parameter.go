package parameter

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter declaration problems. All are wrapped in
// ErrConfiguration so callers can test with errors.Is(err,
// parameter.ErrConfiguration) without matching the more specific cause.
var (
	// ErrConfiguration is the umbrella sentinel for every parameter
	// declaration mistake: duplicate name, empty range, or a bad
	// constraint reference.
	ErrConfiguration = errors.New("parameter: configuration error")

	// ErrDuplicateName indicates two parameters share a Name.
	ErrDuplicateName = fmt.Errorf("%w: duplicate parameter name", ErrConfiguration)

	// ErrEmptyName indicates a Parameter with an empty Name.
	ErrEmptyName = fmt.Errorf("%w: parameter name is empty", ErrConfiguration)

	// ErrUnknownDependency indicates a constraint's DependsOn references a
	// name that is not declared at or before the owning parameter.
	ErrUnknownDependency = fmt.Errorf("%w: constraint depends on an undeclared or later parameter", ErrConfiguration)

	// ErrNilRange indicates a Parameter with a nil Range.
	ErrNilRange = fmt.Errorf("%w: parameter range is nil", ErrConfiguration)
)

// Constraint prunes a parameter's candidate values based on the bound
// values of earlier parameters. DependsOn names the formal parameters the
// Predicate reads — all must occur at or before the owning Parameter's
// position in the declared order. The predicate
// itself is invoked with a map binding every name in DependsOn plus the
// candidate value for the owning parameter, keyed by its own name.
type Constraint struct {
	// DependsOn lists the names of prior parameters this constraint's
	// Predicate reads. It may also list the owning parameter's own name,
	// but need not: that binding is always supplied implicitly.
	DependsOn []string

	// Predicate receives a map of name→Value covering every name in
	// DependsOn plus the owning parameter's own name (bound to the
	// candidate value under test), and reports whether the candidate is
	// admissible.
	Predicate func(bound map[string]Value) bool
}

// Parameter is an immutable tuning-parameter declaration: a unique Name, an
// enumerable Range, and an optional Constraint.
type Parameter struct {
	Name       string
	Range      Range
	Constraint *Constraint // nil means "always valid"
}

// New constructs a Parameter. The Range must be non-nil and non-empty;
// validity of Constraint.DependsOn against sibling declaration order is
// checked later, at Validate(list) time, since it depends on position
// within the full parameter list.
func New(name string, r Range, constraint *Constraint) (Parameter, error) {
	if name == "" {
		return Parameter{}, ErrEmptyName
	}
	if r == nil {
		return Parameter{}, ErrNilRange
	}
	if r.Size() <= 0 {
		return Parameter{}, fmt.Errorf("%w: parameter %q has an empty range", ErrEmptyRange, name)
	}
	return Parameter{Name: name, Range: r, Constraint: constraint}, nil
}

// DependencySet returns the set of names this parameter's constraint reads,
// or nil if the parameter is unconstrained.
func (p Parameter) DependencySet() []string {
	if p.Constraint == nil {
		return nil
	}
	return p.Constraint.DependsOn
}

// Satisfies evaluates p's constraint (true if unconstrained) against a
// binding that must already contain every name in p.DependencySet() plus
// p.Name itself bound to candidate.
func (p Parameter) Satisfies(bound map[string]Value) bool {
	if p.Constraint == nil {
		return true
	}
	return p.Constraint.Predicate(bound)
}

// Validate checks an ordered parameter list against declared-order invariants:
// names are unique and non-empty, ranges are non-nil, and every
// constraint's DependsOn refers only to names at or before its own
// position. Returns the first violation found, wrapped in ErrConfiguration.
func Validate(params []Parameter) error {
	seen := make(map[string]int, len(params))
	for idx, p := range params {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter at position %d", ErrEmptyName, idx)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		if p.Range == nil {
			return fmt.Errorf("%w: %q", ErrNilRange, p.Name)
		}
		if p.Range.Size() <= 0 {
			return fmt.Errorf("%w: parameter %q", ErrEmptyRange, p.Name)
		}
		for _, dep := range p.DependencySet() {
			if dep == p.Name {
				continue
			}
			depPos, ok := seen[dep]
			if !ok || depPos > idx {
				return fmt.Errorf("%w: %q references %q", ErrUnknownDependency, p.Name, dep)
			}
		}
		seen[p.Name] = idx
	}
	return nil
}

// Configuration is an ordered assignment of values to every declared
// parameter, keyed by name. Use Ordered to recover the declared order.
type Configuration map[string]Value

// Clone returns a shallow copy of c; Value is itself immutable, so this is
// also a deep copy for all practical purposes.
func (c Configuration) Clone() Configuration {
	cp := make(Configuration, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp
}
