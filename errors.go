package cmdline

import (
	"errors"
	"fmt"

	"github.com/mwantia/cmdline/registry"
)

// Standard errors a parse can fail with. Every *ParseError unwraps to exactly
// one of them, so callers can branch with errors.Is.
var (
	// Structural errors
	ErrNoAction                 = errors.New("cmdline: no action")
	ErrActionMustPrecedeOptions = errors.New("cmdline: action must precede options")
	ErrInvalidOperand           = errors.New("cmdline: invalid operand")

	// Lookup errors
	ErrUnknownAction = errors.New("cmdline: unknown action")
	ErrUnknownOption = errors.New("cmdline: unknown option")

	// Operand count errors
	ErrTooManyOperands   = errors.New("cmdline: too many operands")
	ErrNotEnoughOperands = errors.New("cmdline: not enough operands")

	// Value errors
	ErrCastFailed = errors.New("cmdline: option value cast failed")
)

// ErrHelpInvoked is returned by Parse when the usage text was printed but the
// configured exit function returned instead of terminating the process.
var ErrHelpInvoked = errors.New("cmdline: help invoked")

// Errors caused by the host program rather than by user input.
var (
	ErrTypeMismatch  = errors.New("cmdline: option type mismatch")
	ErrDuplicateName = registry.ErrDuplicateName
	ErrInvalidName   = registry.ErrInvalidName
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	NoAction ErrorKind = iota + 1
	ActionMustPrecedeOptions
	UnknownAction
	UnknownOption
	TooManyOperands
	NotEnoughOperands
	InvalidOperand
	CastFailed
)

func (k ErrorKind) String() string {
	switch k {
	case NoAction:
		return "NoAction"
	case ActionMustPrecedeOptions:
		return "ActionMustPrecedeOptions"
	case UnknownAction:
		return "UnknownAction"
	case UnknownOption:
		return "UnknownOption"
	case TooManyOperands:
		return "TooManyOperands"
	case NotEnoughOperands:
		return "NotEnoughOperands"
	case InvalidOperand:
		return "InvalidOperand"
	case CastFailed:
		return "CastFailed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NoAction:
		return ErrNoAction
	case ActionMustPrecedeOptions:
		return ErrActionMustPrecedeOptions
	case UnknownAction:
		return ErrUnknownAction
	case UnknownOption:
		return ErrUnknownOption
	case TooManyOperands:
		return ErrTooManyOperands
	case NotEnoughOperands:
		return ErrNotEnoughOperands
	case InvalidOperand:
		return ErrInvalidOperand
	case CastFailed:
		return ErrCastFailed
	default:
		return nil
	}
}

// ParseError is the single structured failure reported to the user. Message
// is the primary line, Hint the remediation printed below it.
type ParseError struct {
	Kind    ErrorKind
	Program string
	Message string
	Hint    string

	Token      string // offending token, if any
	Suggestion string // "did you mean" candidate in display form, if any
	Err        error  // underlying cause, e.g. a value.CastError
}

func (e *ParseError) Error() string {
	if e.Program == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Program, e.Message)
}

// Report returns the two line diagnostic a host prints to stderr.
func (e *ParseError) Report() string {
	if e.Hint == "" {
		return e.Error()
	}
	return e.Error() + "\n" + e.Hint
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ProgrammingError wraps errors caused by incorrect use of the library.
// These are bugs in the host program, not user input errors.
type ProgrammingError struct {
	msg string
	err error
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

func (e *ProgrammingError) Unwrap() error {
	return e.err
}

func newProgrammingError(err error, format string, args ...any) *ProgrammingError {
	return &ProgrammingError{
		msg: fmt.Sprintf(format, args...) + ": " + err.Error(),
		err: err,
	}
}
