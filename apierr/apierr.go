package apierr

import (
	"fmt"
	"net/http"
)

// ApiError is the error type every service returns for expected
// failures. Status maps directly to the HTTP status the controller
// responds with; Errors carries the aggregated validation messages.
type ApiError struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *ApiError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Errors)
	}
	return e.Message
}

func New(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

// NewValidation aggregates all discovered input problems into a single
// 400 error rather than failing on the first one.
func NewValidation(message string, errs []string) *ApiError {
	return &ApiError{Status: http.StatusBadRequest, Message: message, Errors: errs}
}

func NewNotFound(message string) *ApiError {
	return &ApiError{Status: http.StatusNotFound, Message: message}
}

func NewForbidden(message string) *ApiError {
	return &ApiError{Status: http.StatusForbidden, Message: message}
}

func NewConflict(message string) *ApiError {
	return &ApiError{Status: http.StatusConflict, Message: message}
}

// From unwraps err as an *ApiError, or wraps it as a 500 so data-layer
// failures never leak raw error text selection to the controller.
func From(err error) *ApiError {
	if apiErr, ok := err.(*ApiError); ok {
		return apiErr
	}
	return &ApiError{Status: http.StatusInternalServerError, Message: "Internal server error"}
}
