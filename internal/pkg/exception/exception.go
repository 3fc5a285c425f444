package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors. StatusCode is the HTTP
// status the transport layer answers with.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on message and status, so a sentinel still matches after WithCause.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.StatusCode == targetErr.StatusCode &&
		e.Message == targetErr.Message
}

// WithCause returns a copy of the error carrying cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
