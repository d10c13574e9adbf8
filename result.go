package cmdline

import (
	"sort"

	"github.com/mwantia/cmdline/format"
	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/value"
)

// Result is the outcome of a successful Parse. It is never modified after
// Parse returns it.
type Result struct {
	action   string
	options  map[string]supplied
	operands []string

	profile platform.Profile
	program string
}

type supplied struct {
	raw    string
	caster value.Caster
}

// Action returns the action token as it was supplied, or "" when the command
// line has no actions registered.
func (r *Result) Action() string {
	return r.action
}

// Has reports whether the option was supplied.
func (r *Result) Has(name string) bool {
	_, ok := r.options[r.profile.Normalize(name)]
	return ok
}

// Raw returns the uncast value of an option.
func (r *Result) Raw(name string) (string, bool) {
	s, ok := r.options[r.profile.Normalize(name)]
	return s.raw, ok
}

// OptionNames returns the normalized names of all supplied options, sorted.
func (r *Result) OptionNames() []string {
	names := make([]string, 0, len(r.options))
	for name := range r.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operand returns the operand at index i. Negative indices count from the
// end; any index out of range yields "".
func (r *Result) Operand(i int) string {
	n := len(r.operands)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return ""
	}
	return r.operands[i]
}

// Operands returns a copy of all operands in order.
func (r *Result) Operands() []string {
	return append([]string(nil), r.operands...)
}

func (r *Result) NumOperands() int {
	return len(r.operands)
}

// Option looks up an option and casts its value to T. An option that was not
// supplied yields the zero T, false and no error.
//
// Values are cast lazily: the custom caster registered for the option is
// used if there is one, the builtin caster for T otherwise. A value that
// cannot be cast is reported as a *ParseError of kind CastFailed. A custom
// caster producing a different kind than T is a *ProgrammingError wrapping
// ErrTypeMismatch.
func Option[T value.Scalar](r *Result, name string) (T, bool, error) {
	var zero T

	key := r.profile.Normalize(name)
	s, ok := r.options[key]
	if !ok {
		return zero, false, nil
	}

	caster := s.caster
	if caster == nil {
		caster = value.Builtin(value.KindOf[T](), r.profile)
	}

	v, err := caster(s.raw)
	if err != nil {
		return zero, true, r.castError(key, err)
	}

	out, ok := value.Get[T](v)
	if !ok {
		return zero, true, newProgrammingError(ErrTypeMismatch,
			"cmdline: option '%s' holds %s, queried as %s", key, v.Kind(), value.KindOf[T]())
	}
	return out, true, nil
}

// MustOption is the fail-fast variant of Option. It panics on cast failures
// and type mismatches alike.
func MustOption[T value.Scalar](r *Result, name string) (T, bool) {
	v, ok, err := Option[T](r, name)
	if err != nil {
		panic(err)
	}
	return v, ok
}

func (r *Result) castError(key string, err error) *ParseError {
	return &ParseError{
		Kind:    CastFailed,
		Program: r.program,
		Message: err.Error(),
		Hint:    format.Must(hintDefault, r.program, r.profile.HelpToken()),
		Token:   r.profile.Delimited(key),
		Err:     err,
	}
}
