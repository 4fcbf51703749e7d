// Package apperrors defines the domain error taxonomy and its single
// HTTP status mapping. Handlers never invent status codes; they map
// whatever kind bubbles up through this table.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotAuthenticated
	KindForbidden
	KindNotFound
	KindValidation
	KindDuplicate
	KindFkInUse
	KindSlotTaken
	KindOutsideWorkingHours
	KindOnTimeOff
	KindPastDateTime
	KindStatusNotAllowed
	KindUnavailable
)

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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotAuthenticated(message string) *Error { return New(KindNotAuthenticated, message) }
func Forbidden(message string) *Error        { return New(KindForbidden, message) }
func NotFound(message string) *Error         { return New(KindNotFound, message) }
func Validation(message string) *Error       { return New(KindValidation, message) }
func Duplicate(message string) *Error        { return New(KindDuplicate, message) }
func FkInUse(message string) *Error          { return New(KindFkInUse, message) }
func SlotTaken(message string) *Error        { return New(KindSlotTaken, message) }
func OutsideWorkingHours(message string) *Error {
	return New(KindOutsideWorkingHours, message)
}
func OnTimeOff(message string) *Error        { return New(KindOnTimeOff, message) }
func PastDateTime(message string) *Error     { return New(KindPastDateTime, message) }
func StatusNotAllowed(message string) *Error { return New(KindStatusNotAllowed, message) }
func Unavailable(message string, err error) *Error {
	return Wrap(KindUnavailable, message, err)
}

// KindOf extracts the kind from an error chain. Anything unrecognized
// is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

var statusByKind = map[Kind]int{
	KindNotAuthenticated:    http.StatusUnauthorized,
	KindForbidden:           http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindValidation:          http.StatusBadRequest,
	KindDuplicate:           http.StatusConflict,
	KindFkInUse:             http.StatusConflict,
	KindSlotTaken:           http.StatusUnprocessableEntity,
	KindOutsideWorkingHours: http.StatusUnprocessableEntity,
	KindOnTimeOff:           http.StatusUnprocessableEntity,
	KindPastDateTime:        http.StatusUnprocessableEntity,
	KindStatusNotAllowed:    http.StatusUnprocessableEntity,
	KindUnavailable:         http.StatusServiceUnavailable,
	KindInternal:            http.StatusInternalServerError,
}

// HTTPStatus maps a kind to its externally observable status code.
func HTTPStatus(kind Kind) int {
	if s, ok := statusByKind[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}
