package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed request against the backend API.
// Status is the HTTP status code of the response, or 0 when the request
// never reached the server (connection refused, timeout, bad payload).
// Message carries the server-provided message body when one could be
// extracted, so callers can surface it verbatim.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	if e.Status == 0 {
		return "api: request failed"
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// NewAPIError creates a new API error.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewTransportError wraps a transport-level failure (no HTTP response).
func NewTransportError(err error) *APIError {
	return &APIError{Status: 0, Message: err.Error()}
}

// AsAPIError converts an error to *APIError if possible.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// StatusOf returns the HTTP status of an error, or 0 when the error is
// not an APIError.
func StatusOf(err error) int {
	if apiErr := AsAPIError(err); apiErr != nil {
		return apiErr.Status
	}
	return 0
}

// ServerMessage returns the server-provided message of an error, or ""
// when there is none. Transport failures (status 0) never have one:
// their Message is a Go error string meant for logs, not for users.
func ServerMessage(err error) string {
	if apiErr := AsAPIError(err); apiErr != nil && apiErr.Status != 0 {
		return apiErr.Message
	}
	return ""
}

// IsConflict reports whether the error is an HTTP 409 response.
func IsConflict(err error) bool {
	return StatusOf(err) == http.StatusConflict
}

// IsNotFound reports whether the error is an HTTP 404 response.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
