// Package value implements the runtime representation of Lox values:
// the tagged Value struct, the Callable interface and its three
// implementations, and the Env chain evaluation runs against.
package value

import (
	"fmt"
	"strconv"
)

// Kind is the closed set of runtime value tags.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
)

// String returns a human-readable name for the kind, used in debug dumps.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Object is implemented by every non-primitive runtime value: callables
// (NativeFn, UserFn, Class) and Instance.
type Object interface {
	String() string
}

// Value is a tagged struct rather than an interface/any, so truthiness
// and equality are closed switches over Kind instead of type assertions.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  *string
	Obj  Object
}

// Nil is the shared zero-arity nil value.
var Nil = Value{Kind: KindNil}

// MakeBool creates a boolean value.
func MakeBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// MakeNumber creates a number value.
func MakeNumber(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// MakeString creates a string value. The backing string is shared, never
// copied, so repeated concatenation of the same literal never aliases a
// caller's mutable buffer (Go strings are themselves immutable).
func MakeString(s string) Value { return Value{Kind: KindString, Str: &s} }

// MakeObject creates a value wrapping a Callable or Instance.
func MakeObject(o Object) Value { return Value{Kind: KindObject, Obj: o} }

// IsTruthy implements the truthiness rule: nil and false are
// falsey, everything else is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Equals implements the equality rule: nil equals only nil,
// cross-kind comparisons are always false, no implicit coercion.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Num == other.Num
	case KindString:
		return *v.Str == *other.Str
	case KindObject:
		return v.Obj == other.Obj
	default:
		return false
	}
}

// Stringify renders v the way `print` and string concatenation expect:
// integral doubles print without a trailing fraction, nil prints as
// "nil", objects defer to their own String().
func Stringify(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return stringifyNumber(v.Num)
	case KindString:
		return *v.Str
	case KindObject:
		return v.Obj.String()
	default:
		return "<invalid>"
	}
}

// stringifyNumber renders n the way `print` expects: the shortest
// round-tripping decimal, with no trailing ".0" tacked onto an integral
// value the way Go's own %v/String would.
func stringifyNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// TypeName returns a user-facing type name for v ("nil", "boolean",
// "number", "string", "object").
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "?"
	}
}
