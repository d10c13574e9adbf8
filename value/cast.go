package value

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mwantia/cmdline/platform"
)

var (
	ErrInvalidValue   = errors.New("invalid option value")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrOutOfRange     = errors.New("out of range")
)

// Caster converts a raw option value into a Value. Returning an error aborts
// the query that triggered the conversion.
type Caster func(raw string) (Value, error)

// CastError describes a raw value that could not be converted into the
// requested kind.
type CastError struct {
	Raw    string
	Kind   Kind
	Reason error
}

func (e *CastError) Error() string {
	if e.Reason == ErrInvalidValue {
		return fmt.Sprintf("%v: '%s'", e.Reason, e.Raw)
	}
	return fmt.Sprintf("%v, %s: '%s'", e.Reason, e.Kind, e.Raw)
}

func (e *CastError) Unwrap() error {
	return e.Reason
}

// Builtin returns the default caster for kind under the given profile.
func Builtin(kind Kind, profile platform.Profile) Caster {
	return func(raw string) (Value, error) {
		return Cast(kind, raw, profile)
	}
}

// Cast converts raw into kind. Boolean literals are compared after
// normalization; integers must consume the entire string.
func Cast(kind Kind, raw string, profile platform.Profile) (Value, error) {
	switch kind {
	case Bool:
		switch profile.Normalize(raw) {
		case profile.Normalize("true"):
			return OfBool(true), nil
		case profile.Normalize("false"):
			return OfBool(false), nil
		}
		return Value{}, &CastError{Raw: raw, Kind: kind, Reason: ErrInvalidValue}

	case Int32:
		i, err := parseInt(raw, kind, 32)
		if err != nil {
			return Value{}, err
		}
		return OfInt32(int32(i)), nil

	case Int64:
		i, err := parseInt(raw, kind, 64)
		if err != nil {
			return Value{}, err
		}
		return OfInt64(i), nil

	case Text:
		return OfText(raw), nil
	}

	return Value{}, fmt.Errorf("value: unsupported kind %d", int(kind))
}

// As casts raw with the builtin caster matching T.
func As[T Scalar](raw string, profile platform.Profile) (T, error) {
	var zero T

	v, err := Cast(KindOf[T](), raw, profile)
	if err != nil {
		return zero, err
	}

	out, _ := Get[T](v)
	return out, nil
}

func parseInt(raw string, kind Kind, bits int) (int64, error) {
	i, err := strconv.ParseInt(raw, 10, bits)
	if err == nil {
		return i, nil
	}

	reason := ErrInvalidPattern
	if errors.Is(err, strconv.ErrRange) {
		reason = ErrOutOfRange
	}
	return 0, &CastError{Raw: raw, Kind: kind, Reason: reason}
}
