package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError carries a non-2xx backend response. The server's message field
// may be a single string or an array of strings; arrays are joined with
// ", " so screens always have one banner message to show.
type APIError struct {
	Status  int
	Code    string
	message string
}

// NewAPIError creates an APIError from a status code and the raw response
// body. A body that is not the expected JSON envelope falls back to a
// generic message.
func NewAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		message = JoinMessage(envelope.Message)
		if message == "" {
			message = envelope.Error
		}
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	return &APIError{
		Status:  status,
		Code:    "API_ERROR",
		message: message,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *APIError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	return e.Code
}

// Message returns the user-friendly error message
func (e *APIError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *APIError) Details() string {
	return ""
}

// IsUnauthorized reports whether the response was an HTTP 401.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// JoinMessage flattens a server message that may be a JSON string or an
// array of strings into one display string.
func JoinMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, ", ")
	}

	return string(raw)
}
