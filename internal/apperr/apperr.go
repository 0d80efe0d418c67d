// Package apperr carries the error kinds the API maps onto HTTP statuses.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindValidation - missing or invalid input (400)
	KindValidation Kind = iota
	// KindNotFound - referenced entity absent (404)
	KindNotFound
	// KindConflict - duplicate application, self-application, already saved (400)
	KindConflict
	// KindStorage - underlying persistence failure (500)
	KindStorage
)

// Error pairs a human-readable message with a kind and optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

// Storage wraps a persistence failure so the cause string still reaches the caller.
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// Status maps an error to the HTTP status the handlers respond with.
// Anything that is not an *Error counts as an unexpected server fault.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
