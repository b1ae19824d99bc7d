package apperr

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError lists human-readable reasons an input was rejected.
// It matches ErrInvalid under errors.Is.
type ValidationError struct {
	Messages []string
}

// Invalid builds a ValidationError from the given messages.
func Invalid(messages ...string) error {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrInvalid.Error()
	}
	return ErrInvalid.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Messages extracts validation messages from err, if any.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
