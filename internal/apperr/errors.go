package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for exit-code mapping at the CLI boundary.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindRateUnavailable Kind = "rate_unavailable"
	KindRender          Kind = "render"
)

// Error is a domain-level error carrying a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func RateUnavailable(format string, args ...any) *Error {
	return New(KindRateUnavailable, fmt.Sprintf(format, args...))
}

func Render(format string, args ...any) *Error {
	return New(KindRender, fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the nearest *Error in err's chain,
// or the empty Kind when the chain holds none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ExitCode maps an error to the process exit code the CLI reports.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindConflict:
		return 4
	case KindRateUnavailable:
		return 5
	case KindRender:
		return 6
	default:
		return 1
	}
}
