package parameter

import "fmt"

// Kind identifies the concrete domain type carried by a Value.
type Kind uint8

const (
	// KindInt marks a Value carrying an int64.
	KindInt Kind = iota
	// KindFloat marks a Value carrying a float64.
	KindFloat
	// KindString marks a Value carrying a string.
	KindString
)

// String renders k for diagnostics and log lines.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the domain types a Range may enumerate.
// Exactly one of the typed accessors is meaningful for a given Value,
// selected by Kind. Value is immutable and safe to copy.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue wraps v as a Value of KindInt.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// FloatValue wraps v as a Value of KindFloat.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// StringValue wraps v as a Value of KindString.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports which domain type v carries.
func (v Value) Kind() Kind { return v.kind }

// Int returns the wrapped int64. Panics if v.Kind() != KindInt.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("parameter: Value.Int called on a %s value", v.kind))
	}
	return v.i
}

// Float returns the wrapped float64. Panics if v.Kind() != KindFloat.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("parameter: Value.Float called on a %s value", v.kind))
	}
	return v.f
}

// String returns the wrapped string. Panics if v.Kind() != KindString.
// Note this shadows fmt.Stringer's usual "never panic" convention, matching
// the typed-accessor contract of the other Kind-specific getters.
func (v Value) String() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("parameter: Value.String called on a %s value", v.kind))
	}
	return v.s
}

// Equal reports whether v and other carry the same Kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	default:
		return false
	}
}

// GoString renders a debug-friendly representation, used by %#v and by
// log fields when a Value is embedded in a Configuration.
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("Value(int=%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("Value(float=%g)", v.f)
	case KindString:
		return fmt.Sprintf("Value(string=%q)", v.s)
	default:
		return "Value(invalid)"
	}
}
