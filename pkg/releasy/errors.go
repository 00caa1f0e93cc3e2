package releasy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	// ErrInvalidBaseURL is returned at construction time when the configured
	// base URL is empty or does not start with http:// or https://.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrMissingLocationHeader is returned when a download resolution gets a
	// 302 without a Location header, i.e. the server violated the redirect
	// contract.
	ErrMissingLocationHeader = errors.New("missing Location header in redirect response")
	// ErrConfigRequired is returned when a nil Config is passed to a
	// constructor.
	ErrConfigRequired = errors.New("config is required")
)

// ErrorDetail is the structured {code, message} pair inside the canonical
// error body.
type ErrorDetail struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ErrorBody is the canonical error shape returned by the API.
type ErrorBody struct {
	Error ErrorDetail `json:"error" yaml:"error"`
}

// APIError represents any response whose status fell outside the endpoint's
// declared success set. Detail is nil when the body did not parse as the
// canonical error shape; Body is empty when the response body was empty.
// The client never interprets specific statuses differently: every APIError
// is propagated verbatim to the caller.
type APIError struct {
	Status int
	Detail *ErrorDetail
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("api error (status %d): %s (%s)", e.Status, e.Detail.Code, e.Detail.Message)
	}

	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Code returns the structured error code, or "" when the body was unparseable.
func (e *APIError) Code() string {
	if e.Detail == nil {
		return ""
	}

	return e.Detail.Code
}

// Message returns the structured error message, or "" when the body was
// unparseable.
func (e *APIError) Message() string {
	if e.Detail == nil {
		return ""
	}

	return e.Detail.Message
}

// NewAPIError classifies a non-success response. The body is parsed
// tolerantly: a body that is not the canonical error shape degrades to
// status plus raw text, never to a different error type.
func NewAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed ErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Code != "" {
		apiErr.Detail = &parsed.Error
	}

	if len(body) > 0 {
		apiErr.Body = string(body)
	}

	return apiErr
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// APIError.
func StatusOf(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	return StatusOf(err) == http.StatusForbidden
}
