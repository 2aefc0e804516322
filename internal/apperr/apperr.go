// Package apperr defines the error type used for user-facing errors
package apperr

import "fmt"

// Error is an application error with a printf-style message template.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with the message template filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps the given cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error created from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}
