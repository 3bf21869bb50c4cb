package errdefs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEngineStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		code      Code
		retryable bool
	}{
		{"bad request", 400, CodeValidation, false},
		{"unauthorized", 401, CodeAuthentication, false},
		{"forbidden", 403, CodeAuthentication, false},
		{"not found", 404, CodeNotFound, false},
		{"conflict", 409, CodeConflict, false},
		{"rate limited maps to generic on engine", 429, CodeBackend, false},
		{"internal", 500, CodeUpstreamInternal, true},
		{"bad gateway", 502, CodeUpstreamInternal, true},
		{"unavailable", 503, CodeUnavailable, true},
		{"teapot", 418, CodeBackend, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromEngineStatus(tt.status, []byte(`{"message":"boom"}`))
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, tt.retryable, err.Retryable)
			assert.Contains(t, err.Message, "boom")
		})
	}
}

func TestFromEngineStatusFallbackMessages(t *testing.T) {
	err := FromEngineStatus(500, []byte("plain text failure"))
	assert.Equal(t, "plain text failure", err.Message)

	err = FromEngineStatus(500, nil)
	assert.Equal(t, "engine request failed with status 500", err.Message)
}

func TestFromHubStatusRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		want       int
	}{
		{"header present", "30", 30},
		{"header absent", "", 60},
		{"header garbage", "soon", 60},
		{"negative", "-5", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromHubStatus(429, nil, tt.retryAfter)
			assert.Equal(t, CodeRateLimited, err.Code)
			assert.True(t, err.Retryable)
			assert.Equal(t, tt.want, err.RetryAfterSeconds)
		})
	}
}

func TestFromHubStatusBodies(t *testing.T) {
	err := FromHubStatus(404, []byte(`{"detail":"repository not found"}`), "")
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "repository not found", err.Message)

	err = FromHubStatus(401, []byte(`{"message":"login required"}`), "")
	assert.Equal(t, CodeAuthentication, err.Code)
	assert.Equal(t, "login required", err.Message)

	err = FromHubStatus(400, []byte(`{"name":["this field is required"]}`), "")
	assert.Equal(t, CodeValidation, err.Code)
	require.NotNil(t, err.Details)
	assert.Contains(t, err.Details, "name")
}

func TestConnectionIsRetryable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Connection(cause)
	assert.Equal(t, CodeUnavailable, err.Code)
	assert.True(t, err.Retryable)
	assert.ErrorIs(t, err, cause)
}

func TestAsUnwrapsChains(t *testing.T) {
	inner := New(CodeNotFound, "gone")
	wrapped := errors.Wrap(inner, "listing containers")

	be, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, be.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
