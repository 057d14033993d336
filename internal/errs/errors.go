// Package errs defines the request error taxonomy shared by services and
// handlers. Services return these; handlers map them to HTTP statuses with
// HTTPStatus instead of picking codes ad hoc.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation covers malformed input: missing fields, bad enums.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers missing rows and ownership mismatches. Ownership
	// failures map here on purpose so non-owners cannot probe existence.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned on role check failures.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidState is returned for illegal state transitions.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrAlreadyDecided is returned when a report decision is attempted twice.
	ErrAlreadyDecided = errors.New("report already decided")

	// ErrAlreadyJoined is returned on a duplicate tour join.
	ErrAlreadyJoined = errors.New("already joined")

	// ErrNotAMember is returned when the pilot has no active membership.
	ErrNotAMember = errors.New("not a member")
)

// Wrap attaches a human-readable message to a taxonomy sentinel.
func Wrap(sentinel error, msg string) error {
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// Wrapf is Wrap with formatting.
func Wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, sentinel)...)
}

// HTTPStatus maps a service error to its HTTP status code. Unclassified
// errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrNotAMember):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyDecided), errors.Is(err, ErrAlreadyJoined):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
