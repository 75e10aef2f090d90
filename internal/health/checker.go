// Package health provides a pre-flight check of the CARDS service.
//
// Purpose:
//
//	Verify that the configured CARDS instance is reachable and that the
//	administrator credentials authenticate, so that a failing vocabulary query
//	can be told apart from a wrong address or password.
//
// Dependencies:
//   - internal/client/cards: Session info lookup
//   - context: Timeout control
//
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/veronikaslc/cards/internal/client/cards"
	"github.com/veronikaslc/cards/internal/errors"
)

// DefaultTimeout bounds the check when the caller passes zero.
const DefaultTimeout = 5 * time.Second

// SessionSource is the part of the CARDS client the checker needs.
type SessionSource interface {
	SessionInfo(ctx context.Context) (*cards.SessionInfo, error)
	BaseURL() string
}

// Checker performs the health check.
type Checker struct {
	timeout time.Duration
}

// NewChecker creates a new health checker.
func NewChecker(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Checker{timeout: timeout}
}

// Status is the result of a health check.
type Status struct {
	Service string        `json:"service" yaml:"service"`
	URL     string        `json:"url" yaml:"url"`
	Healthy bool          `json:"healthy" yaml:"healthy"`
	UserID  string        `json:"userID,omitempty" yaml:"userID,omitempty"`
	Latency time.Duration `json:"latency" yaml:"latency"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Check verifies that src is reachable and authenticates as expectedUser.
func (c *Checker) Check(ctx context.Context, src SessionSource, expectedUser string) (Status, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := Status{Service: cards.ServiceName, URL: src.BaseURL()}

	start := time.Now()
	info, err := src.SessionInfo(ctx)
	status.Latency = time.Since(start)
	if err != nil {
		status.Error = err.Error()
		return status, err
	}

	status.UserID = info.UserID
	if info.UserID == "" || info.UserID == cards.AnonymousUser {
		err := errors.NewAuthenticationError("credentials were not accepted; session is anonymous")
		status.Error = err.Error()
		return status, err
	}
	if expectedUser != "" && info.UserID != expectedUser {
		err := errors.NewAuthenticationError(fmt.Sprintf("authenticated as %q, expected %q", info.UserID, expectedUser))
		status.Error = err.Error()
		return status, err
	}

	status.Healthy = true
	return status, nil
}
