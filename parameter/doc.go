// Package parameter defines the tuning-parameter model consumed by the rest
// of autotune: names, enumerable ranges, and constraint predicates over
// earlier-declared parameters.
//
// A Parameter is immutable once constructed: a unique Name, a Range (an
// interval with step, an explicit set, or a generator-backed interval), and
// an optional Constraint whose DependsOn names must all occur at or before
// the parameter's own position in the declared order.
//
// Values drawn from a Range are wrapped in Value, a small tagged union over
// int64, float64, and string, so a single Parameter slice can mix parameter
// domains (an integer work-group size alongside a string scheduling mode)
// while constraints and cost functions stay polymorphic over the concrete
// kind in play.
//
//	go get github.com/katalvlaran/autotune/parameter
package parameter
