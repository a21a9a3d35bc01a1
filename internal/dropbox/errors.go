// Package dropbox provides an HTTP client for the subset of the Dropbox API
// v2 that dropbox-share needs: the client-credentials token exchange, root
// folder listing and batch folder sharing. Errors are classified by HTTP
// status into sentinels usable with errors.Is.
package dropbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for HTTP status code classification.
// Use errors.Is(err, dropbox.ErrUnauthorized) to check.
var (
	ErrBadRequest   = errors.New("dropbox: bad request")
	ErrUnauthorized = errors.New("dropbox: unauthorized")
	ErrForbidden    = errors.New("dropbox: forbidden")
	ErrNotFound     = errors.New("dropbox: not found")
	ErrConflict     = errors.New("dropbox: endpoint error")
	ErrThrottled    = errors.New("dropbox: rate limited")
	ErrServerError  = errors.New("dropbox: server error")
)

// ErrUnexpectedResponse marks a successful HTTP response whose body does not
// have the shape the API documents (missing field, wrong JSON type).
var ErrUnexpectedResponse = errors.New("dropbox: unexpected response")

// ErrNoToken is returned by StaticToken when it holds an empty token.
var ErrNoToken = errors.New("dropbox: no access token")

// APIError wraps a sentinel error with HTTP status code, request ID,
// and the raw response body. Summary holds Dropbox's error_summary when the
// body is a JSON error envelope.
type APIError struct {
	StatusCode int
	RequestID  string
	Message    string
	Summary    string
	Err        error // sentinel, for errors.Is()
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("dropbox: HTTP %d (request-id: %s): %s", e.StatusCode, e.RequestID, e.Message)
	}

	return fmt.Sprintf("dropbox: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ShareError reports a failed batch share. It is returned instead of being
// printed so callers decide whether the failure is fatal.
type ShareError struct {
	Folders int // number of folders in the rejected batch
	Err     error
}

func (e *ShareError) Error() string {
	return fmt.Sprintf("dropbox: sharing %d folders failed: %v", e.Folders, e.Err)
}

func (e *ShareError) Unwrap() error {
	return e.Err
}

// newAPIError builds an APIError from a non-2xx response body.
func newAPIError(status int, requestID string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		RequestID:  requestID,
		Message:    string(body),
		Err:        classifyStatus(status),
	}

	var envelope struct {
		ErrorSummary string `json:"error_summary"`
	}

	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Summary = envelope.ErrorSummary
	}

	return apiErr
}

// classifyStatus maps an HTTP status code to a sentinel error.
// Returns nil for codes without a dedicated sentinel.
func classifyStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrThrottled
	default:
		if code >= http.StatusInternalServerError {
			return ErrServerError
		}

		return nil
	}
}
