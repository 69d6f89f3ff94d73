package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the request boundary. User-facing kinds carry
// Dutch messages that may be shown verbatim; InvariantViolation signals data
// or configuration corruption and must surface as a 5xx.
type Kind int

const (
	KindUnknown Kind = iota
	KindUserInput
	KindPermissionDenied
	KindNotFound
	KindInvariantViolation
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func UserInput(message string) *Error {
	return New(KindUserInput, message)
}

func UserInputf(format string, args ...any) *Error {
	return New(KindUserInput, fmt.Sprintf(format, args...))
}

func PermissionDenied(message string) *Error {
	return New(KindPermissionDenied, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Invariant(message string) *Error {
	return New(KindInvariantViolation, message)
}

func Invariantf(format string, args ...any) *Error {
	return New(KindInvariantViolation, fmt.Sprintf(format, args...))
}

// KindOf returns the taxonomy kind of err, unwrapping as needed.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// HTTPStatus maps the taxonomy onto response codes.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUserInput:
		return http.StatusBadRequest
	case KindPermissionDenied:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
