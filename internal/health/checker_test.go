// Package health provides tests for health checking.
package health

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veronikaslc/cards/internal/client/cards"
	"github.com/veronikaslc/cards/internal/config"
	"github.com/veronikaslc/cards/internal/errors"
)

func TestNewChecker(t *testing.T) {
	checker := NewChecker(2 * time.Second)
	assert.Equal(t, 2*time.Second, checker.timeout)
}

func TestNewCheckerDefault(t *testing.T) {
	checker := NewChecker(0)
	assert.Equal(t, DefaultTimeout, checker.timeout)
}

func sessionServer(t *testing.T, body string, status int) *cards.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return cards.NewClient(config.Config{CardsURL: server.URL, AdminUser: "admin", AdminPassword: "admin"})
}

func TestCheckHealthy(t *testing.T) {
	client := sessionServer(t, `{"userID":"admin"}`, http.StatusOK)

	status, err := NewChecker(0).Check(context.Background(), client, "admin")
	require.NoError(t, err)

	assert.True(t, status.Healthy)
	assert.Equal(t, "admin", status.UserID)
	assert.Equal(t, client.BaseURL(), status.URL)
}

func TestCheckAnonymous(t *testing.T) {
	client := sessionServer(t, `{"userID":"anonymous"}`, http.StatusOK)

	status, err := NewChecker(0).Check(context.Background(), client, "admin")
	require.Error(t, err)
	assert.False(t, status.Healthy)

	var cliErr *errors.CLIError
	require.True(t, stderrors.As(err, &cliErr))
	assert.Equal(t, errors.ErrCodeAuthenticationFailed, cliErr.Code)
}

func TestCheckUnexpectedUser(t *testing.T) {
	client := sessionServer(t, `{"userID":"someone"}`, http.StatusOK)

	status, err := NewChecker(0).Check(context.Background(), client, "admin")
	require.Error(t, err)
	assert.False(t, status.Healthy)
	assert.NotEmpty(t, status.Error)
}

func TestCheckServerError(t *testing.T) {
	client := sessionServer(t, ``, http.StatusBadGateway)

	status, err := NewChecker(0).Check(context.Background(), client, "admin")
	require.Error(t, err)
	assert.False(t, status.Healthy)

	var cliErr *errors.CLIError
	require.True(t, stderrors.As(err, &cliErr))
	assert.Equal(t, errors.ErrCodeServiceUnavailable, cliErr.Code)
}
