package errors

import (
	"net/http"
)

// HTTPError is the status and code a service error translates to at the
// API boundary. Store errors are passed through as-is with a 500 so the
// caller can decide on retry policy; they are never retried here.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// MapError converts a service error into its user-facing HTTP shape.
// NotFound, validation and conflict outcomes stay distinguishable from
// store failures.
func MapError(err error) HTTPError {
	switch {
	case IsNotFound(err):
		return HTTPError{
			Status:  http.StatusNotFound,
			Code:    ErrCodeNotFound,
			Message: err.Error(),
		}
	case IsValidation(err):
		return HTTPError{
			Status:  http.StatusBadRequest,
			Code:    ErrCodeInvalidParameters,
			Message: err.Error(),
		}
	case IsConflict(err):
		return HTTPError{
			Status:  http.StatusConflict,
			Code:    ErrCodeConflict,
			Message: err.Error(),
		}
	default:
		return HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    ErrCodeInternalError,
			Message: "an unexpected error occurred",
		}
	}
}
