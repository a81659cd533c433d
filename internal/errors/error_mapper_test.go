package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", NewNotFound("Property", "abc"), http.StatusNotFound, ErrCodeNotFound},
		{"validation", NewValidation("page size out of range"), http.StatusBadRequest, ErrCodeInvalidParameters},
		{"conflict", NewConflict("duplicate code"), http.StatusConflict, ErrCodeConflict},
		{"unknown", errors.New("mongo: connection reset"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestMapErrorHidesInternalDetails(t *testing.T) {
	got := MapError(errors.New("dial tcp 10.0.0.1:27017: i/o timeout"))
	assert.NotContains(t, got.Message, "10.0.0.1")
}

func TestMapErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("list properties: %w", NewNotFound("Property", "abc"))
	got := MapError(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestTypedErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("Owner", "x")))
	assert.False(t, IsNotFound(NewValidation("nope")))

	assert.True(t, IsValidation(NewValidation("nope")))
	assert.False(t, IsValidation(NewConflict("nope")))

	assert.True(t, IsConflict(NewConflict("nope")))
	assert.False(t, IsConflict(errors.New("plain")))
}
