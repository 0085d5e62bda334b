package air

import "fmt"

// ErrorCode enumerates the AIR compiler's error taxonomy.
type ErrorCode int

const (
	// InvalidAssertionShape means a stride/length invariant was violated
	// at assertion construction.
	InvalidAssertionShape ErrorCode = iota
	// RegisterOutOfRange means register >= trace width.
	RegisterOutOfRange
	// StepOutOfRange means first_step >= trace length or stride does not
	// divide the trace length.
	StepOutOfRange
	// AssertionOverlap means two assertions on the same register have
	// intersecting step sets.
	AssertionOverlap
	// InvalidPeriodicColumn means a periodic column's length is not a
	// power of two, is less than 2, or exceeds the trace length.
	InvalidPeriodicColumn
	// OptionOutOfRange means a ProofOptions parameter fell outside its
	// stated interval.
	OptionOutOfRange
	// InconsistentDegree means a transition degree's evaluation_degree
	// exceeds the target composition degree.
	InconsistentDegree
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidAssertionShape:
		return "InvalidAssertionShape"
	case RegisterOutOfRange:
		return "RegisterOutOfRange"
	case StepOutOfRange:
		return "StepOutOfRange"
	case AssertionOverlap:
		return "AssertionOverlap"
	case InvalidPeriodicColumn:
		return "InvalidPeriodicColumn"
	case OptionOutOfRange:
		return "OptionOutOfRange"
	case InconsistentDegree:
		return "InconsistentDegree"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is the AIR compiler's typed error: a code, a message, and an
// optional wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// newError builds an *Error with no wrapped cause.
func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrapError builds an *Error wrapping cause.
func wrapError(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Code, so callers
// can match with errors.Is(err, &air.Error{Code: air.StepOutOfRange}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
