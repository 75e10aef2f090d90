// Package client provides the HTTP transport shared by API clients.
//
// Purpose:
//
//	Execute a single HTTP request and classify its outcome. Requests are
//	attempted exactly once; failures surface immediately to the caller, which
//	suits a human-invoked administrative tool.
//
// Dependencies:
//   - go.uber.org/zap: Request diagnostics
//   - internal/logging: URL redaction
//
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/veronikaslc/cards/internal/logging"
)

// ErrTimeout is wrapped into transport errors caused by a deadline.
var ErrTimeout = errors.New("request timed out")

// ErrUnreachable is wrapped into transport errors caused by the network.
var ErrUnreachable = errors.New("service unreachable")

// NewHTTPClient returns an HTTP client. A zero timeout leaves the transport
// defaults in charge.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do executes req once. Transport failures are wrapped with ErrTimeout or
// ErrUnreachable unless ctx was cancelled. Any HTTP response is returned
// as is, whatever its status.
func Do(ctx context.Context, httpClient *http.Client, req *http.Request, logger *zap.Logger) (*http.Response, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	req = req.WithContext(ctx)

	start := time.Now()
	target := logging.RedactURL(req.URL)

	resp, err := httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)

	return resp, nil
}

// isTimeout checks if a transport error was caused by a deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
