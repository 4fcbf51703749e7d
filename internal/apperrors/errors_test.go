package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindNotAuthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindDuplicate, http.StatusConflict},
		{KindFkInUse, http.StatusConflict},
		{KindSlotTaken, http.StatusUnprocessableEntity},
		{KindOutsideWorkingHours, http.StatusUnprocessableEntity},
		{KindOnTimeOff, http.StatusUnprocessableEntity},
		{KindPastDateTime, http.StatusUnprocessableEntity},
		{KindStatusNotAllowed, http.StatusUnprocessableEntity},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.kind))
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindSlotTaken, KindOf(SlotTaken("taken")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	// Wrapped errors keep their kind through the chain.
	wrapped := fmt.Errorf("saving visit: %w", Duplicate("already there"))
	assert.Equal(t, KindDuplicate, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindDuplicate))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestErrorMessage(t *testing.T) {
	plain := NotFound("visit not found")
	assert.Equal(t, "visit not found", plain.Error())

	cause := errors.New("connection refused")
	wrapped := Unavailable("database timed out", cause)
	assert.Equal(t, "database timed out: connection refused", wrapped.Error())
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}
