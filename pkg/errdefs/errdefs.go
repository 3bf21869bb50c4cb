// Package errdefs defines the normalized error taxonomy shared by both
// Docker backends. Every backend operation returns either a decoded value
// or exactly one *Backend error; nothing unclassified escapes to the tool
// layer.
package errdefs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code identifies a normalized error kind.
type Code string

const (
	CodeValidation       Code = "VALIDATION_FAILED"
	CodeAuthentication   Code = "AUTHENTICATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeRateLimited      Code = "RATE_LIMIT_EXCEEDED"
	CodeUpstreamInternal Code = "UPSTREAM_INTERNAL_ERROR"
	CodeUnavailable      Code = "CONNECTION_FAILED"
	CodeBackend          Code = "BACKEND_ERROR"
)

// defaultRetryAfterSeconds is used when a rate-limited response carries no
// parseable Retry-After header.
const defaultRetryAfterSeconds = 60

// Backend is the single rich error type produced by the client layer.
// Retryability is advisory metadata; no retry loop exists in this layer.
type Backend struct {
	Code              Code           `json:"code"`
	Message           string         `json:"message"`
	Status            int            `json:"status,omitempty"`
	Retryable         bool           `json:"retryable"`
	RetryAfterSeconds int            `json:"retryAfterSeconds,omitempty"`
	Details           map[string]any `json:"details,omitempty"`
	Cause             error          `json:"-"`
}

// Error implements the error interface.
func (e *Backend) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("[%s] %s (HTTP %d)", e.Code, e.Message, e.Status)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Backend) Unwrap() error {
	return e.Cause
}

// Is matches on Code so callers can use errors.Is with sentinel values.
func (e *Backend) Is(target error) bool {
	t, ok := target.(*Backend)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an error of the given kind with retryability derived from the
// taxonomy table.
func New(code Code, message string) *Backend {
	return &Backend{
		Code:      code,
		Message:   message,
		Retryable: retryable(code),
	}
}

// Authentication builds an AUTHENTICATION_FAILED error raised before any
// HTTP call is attempted (missing required hub credentials).
func Authentication(message string) *Backend {
	return New(CodeAuthentication, message)
}

// Connection wraps a network-level failure reaching either backend.
func Connection(cause error) *Backend {
	e := New(CodeUnavailable, fmt.Sprintf("backend unreachable: %v", cause))
	e.Cause = cause
	return e
}

// As extracts a *Backend from an error chain.
func As(err error) (*Backend, bool) {
	var be *Backend
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// FromEngineStatus maps a non-2xx engine response to its normalized kind.
// The engine has no distinguished rate-limit case: 429 falls through to the
// generic mapping.
func FromEngineStatus(status int, body []byte) *Backend {
	e := fromStatus(status, engineMessage(status, body))
	if status == 400 {
		e.Details = map[string]any{"message": engineMessage(status, body)}
	}
	return e
}

// FromHubStatus maps a non-2xx hub response to its normalized kind. A 429
// becomes RATE_LIMIT_EXCEEDED carrying the Retry-After header parsed as
// seconds, defaulting when absent or unparseable.
func FromHubStatus(status int, body []byte, retryAfter string) *Backend {
	if status == 429 {
		e := New(CodeRateLimited, "hub rate limit exceeded")
		e.Status = status
		e.RetryAfterSeconds = parseRetryAfter(retryAfter)
		return e
	}
	msg, details := hubMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("hub request failed with status %d", status)
	}
	e := fromStatus(status, msg)
	if status == 400 && len(details) > 0 {
		e.Details = details
	}
	return e
}

// fromStatus implements the status-to-kind table shared by both backends.
func fromStatus(status int, message string) *Backend {
	var code Code
	switch {
	case status == 400:
		code = CodeValidation
	case status == 401 || status == 403:
		code = CodeAuthentication
	case status == 404:
		code = CodeNotFound
	case status == 409:
		code = CodeConflict
	case status == 503:
		code = CodeUnavailable
	case status >= 500 && status < 600:
		code = CodeUpstreamInternal
	default:
		code = CodeBackend
	}
	e := New(code, message)
	e.Status = status
	return e
}

// retryable returns the advisory retryability for a kind.
func retryable(code Code) bool {
	switch code {
	case CodeRateLimited, CodeUpstreamInternal, CodeUnavailable:
		return true
	}
	return false
}

// parseRetryAfter interprets a Retry-After header value as whole seconds.
func parseRetryAfter(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return defaultRetryAfterSeconds
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return defaultRetryAfterSeconds
	}
	return secs
}

// engineMessage extracts the engine's {"message": "..."} error body,
// falling back to the raw body or a status line.
func engineMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("engine request failed with status %d", status)
}

// hubMessage extracts a hub error body. Hub v2 responses use "detail" or
// "message" for single messages, or a field-to-errors mapping for
// validation failures; the mapping is preserved as details.
func hubMessage(body []byte) (string, map[string]any) {
	if len(body) == 0 {
		return "", nil
	}
	var generic map[string]any
	if err := json.Unmarshal(body, &generic); err != nil {
		return strings.TrimSpace(string(body)), nil
	}
	if detail, ok := generic["detail"].(string); ok && detail != "" {
		return detail, nil
	}
	if msg, ok := generic["message"].(string); ok && msg != "" {
		return msg, nil
	}
	// Field-level validation detail: keep the whole mapping.
	if len(generic) > 0 {
		return "hub request rejected", generic
	}
	return "", nil
}
