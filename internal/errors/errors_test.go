// Package errors provides tests for error handling.
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFailedError(t *testing.T) {
	err := NewQueryFailedError(404)
	require.NotNil(t, err)

	assert.Equal(t, ErrCodeQueryFailed, err.Code)
	assert.Equal(t, "Vocabularies query failed", err.Message)
	assert.Equal(t, 404, err.StatusCode)
	assert.NotZero(t, err.ExitCode, "query failure must exit non-zero")
	assert.True(t, errors.Is(err, ErrQueryFailed))
}

func TestQueryFailedDistinctFromOtherKinds(t *testing.T) {
	transport := NewServiceUnavailableError("cards", "http://localhost:8080", fmt.Errorf("connection refused"))
	decode := NewDecodeError("missing rows", nil)

	assert.False(t, errors.Is(transport, ErrQueryFailed))
	assert.False(t, errors.Is(decode, ErrQueryFailed))
}

func TestServiceUnavailableError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewServiceUnavailableError("cards", "http://test:8080", cause)

	assert.Equal(t, ErrCodeServiceUnavailable, err.Code)
	assert.Equal(t, 3, err.ExitCode)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "http://test:8080")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", fmt.Errorf("boom"), ExitGeneral},
		{"query failed", NewQueryFailedError(500), ExitQueryFailed},
		{"wrapped usage", fmt.Errorf("wrapped: %w", NewUsageError("bad flag")), ExitUsage},
		{"decode", NewDecodeError("rows", nil), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsReported(t *testing.T) {
	err := NewQueryFailedError(401)
	assert.False(t, IsReported(err))

	err.Reported = true
	assert.True(t, IsReported(fmt.Errorf("wrap: %w", err)))
	assert.False(t, IsReported(fmt.Errorf("plain")))
}
