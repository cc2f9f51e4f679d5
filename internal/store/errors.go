package store

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every store failure. Handlers map these to
// status codes with errors.Is; the Error wrapper carries the
// human-readable reason without the sentinel text leaking into it.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on a uniqueness violation.
	ErrConflict = errors.New("conflict")

	// ErrForbidden is returned when the caller does not own the target record.
	ErrForbidden = errors.New("forbidden")
)

type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

func notFoundf(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &Error{kind: ErrConflict, message: fmt.Sprintf(format, args...)}
}

func forbiddenf(format string, args ...interface{}) error {
	return &Error{kind: ErrForbidden, message: fmt.Sprintf(format, args...)}
}
