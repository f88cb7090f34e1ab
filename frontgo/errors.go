package frontgo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid frontgo configuration")
	// ErrMissingParameter indicates a required path parameter was empty
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidParameter indicates a path parameter that would change the endpoint
	ErrInvalidParameter = errors.New("invalid path parameter")
	// ErrClient matches any *Error with a 4xx status
	ErrClient = errors.New("frontgo client error")
	// ErrServer matches any *Error with a 5xx status
	ErrServer = errors.New("frontgo server error")
)

// Kind classifies an API error by its status range.
type Kind int

const (
	// KindClient is a 400–499 response. Not retriable.
	KindClient Kind = iota + 1
	// KindServer is a 500–599 response. Retriable.
	KindServer
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindClient:
		return "client error"
	case KindServer:
		return "server error"
	default:
		return "unknown"
	}
}

// ErrorResponse is the error envelope returned by the API. Not every field is
// present on every error; proxies in front of the API use {"error": "..."}.
type ErrorResponse struct {
	StatusCode    int             `json:"status_code"`
	StatusMessage string          `json:"status_message"`
	Message       string          `json:"message"`
	IsError       bool            `json:"is_error"`
	Errors        json.RawMessage `json:"errors,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// Error is returned for every response with a 4xx or 5xx status.
type Error struct {
	StatusCode int
	Kind       Kind
	// Body is the raw response body.
	Body []byte
	// Details is the decoded error envelope, nil when the body is not a JSON object.
	Details *ErrorResponse

	message string
}

// newError classifies a response. It returns nil for statuses outside 400–599.
func newError(statusCode int, body []byte) *Error {
	var kind Kind
	switch {
	case statusCode >= 400 && statusCode <= 499:
		kind = KindClient
	case statusCode >= 500 && statusCode <= 599:
		kind = KindServer
	default:
		return nil
	}

	e := &Error{
		StatusCode: statusCode,
		Kind:       kind,
		Body:       body,
	}

	trimmed := bytes.TrimSpace(body)
	var pretty bytes.Buffer
	switch {
	case len(trimmed) == 0:
		e.message = fmt.Sprintf("frontgo API responded with a %d status and an empty body", statusCode)
	case json.Indent(&pretty, trimmed, "", "  ") == nil:
		var details ErrorResponse
		if trimmed[0] == '{' && json.Unmarshal(trimmed, &details) == nil {
			e.Details = &details
		}
		e.message = fmt.Sprintf("frontgo API responded with a %d status, body was:\n\n%s", statusCode, pretty.String())
	default:
		e.message = fmt.Sprintf("frontgo API responded with a %d status, body was:\n\n%s\n\n"+
			"This response could not be parsed as JSON, so it is probably an intermittent HTML response "+
			"from a proxy server or a networking error.", statusCode, body)
	}

	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.message
}

// Is reports whether the error matches ErrClient or ErrServer.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrClient:
		return e.Kind == KindClient
	case ErrServer:
		return e.Kind == KindServer
	}
	return false
}

// Retriable reports whether repeating the request may succeed.
func (e *Error) Retriable() bool {
	return e.Kind == KindServer
}

// JSON returns the body decoded into generic Go values, or nil when the body
// is not valid JSON.
func (e *Error) JSON() any {
	var v any
	if err := json.Unmarshal(e.Body, &v); err != nil {
		return nil
	}
	return v
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the API rejected the request for exceeding its rate limit
func (e *Error) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsRetriable reports whether err is an API error that may succeed on retry.
func IsRetriable(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Retriable()
}
