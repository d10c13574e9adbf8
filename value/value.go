package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which scalar a Value holds.
type Kind int

const (
	Bool Kind = iota
	Int32
	Int64
	Text
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Text:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a closed sum over the supported scalar kinds. The zero Value is
// the boolean false.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
}

// Scalar is the set of Go types a Value can be extracted as.
type Scalar interface {
	bool | int32 | int64 | string
}

func OfBool(b bool) Value   { return Value{kind: Bool, b: b} }
func OfInt32(i int32) Value { return Value{kind: Int32, i: int64(i)} }
func OfInt64(i int64) Value { return Value{kind: Int64, i: i} }
func OfText(s string) Value { return Value{kind: Text, s: s} }

// Kind returns the kind of scalar held by v.
func (v Value) Kind() Kind { return v.kind }

// Of wraps a Go scalar into a Value.
func Of[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return OfBool(x)
	case int32:
		return OfInt32(x)
	case int64:
		return OfInt64(x)
	case string:
		return OfText(x)
	}
	panic("unreachable")
}

// KindOf returns the Kind matching the Go type T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		return Text
	}
}

// Get extracts the scalar held by v as T. The second result is false when v
// holds a different kind, in which case the zero T is returned.
func Get[T Scalar](v Value) (T, bool) {
	var out T
	if v.kind != KindOf[T]() {
		return out, false
	}

	var x any
	switch v.kind {
	case Bool:
		x = v.b
	case Int32:
		x = int32(v.i)
	case Int64:
		x = v.i
	case Text:
		x = v.s
	}
	return x.(T), true
}

func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Text:
		return v.s
	default:
		return fmt.Sprintf("<invalid kind %d>", int(v.kind))
	}
}

// Interface returns the held scalar as an untyped Go value.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int32:
		return int32(v.i)
	case Int64:
		return v.i
	default:
		return v.s
	}
}
