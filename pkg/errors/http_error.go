package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it must be rendered to the client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
	Details    []FieldError
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewHTTPError creates an HTTPError whose code doubles as the HTTP status.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if http.StatusText(code) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// WithDetails returns a copy of e carrying field level details.
func (e *HTTPError) WithDetails(details []FieldError) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}
