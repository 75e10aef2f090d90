// Package cards provides the API client for a CARDS data repository.
//
// Purpose:
//
//	Read-only client for the CARDS JCR-SQL2 query servlet and the Sling session
//	info servlet. Authenticates as the administrator with HTTP basic auth and
//	issues a single GET per call, with no retries.
//
// Dependencies:
//   - internal/client: Single-attempt HTTP transport
//   - internal/config: Immutable CLI configuration
//   - internal/errors: Query-failed, transport and decode error kinds
//   - internal/logging: Request-scoped diagnostics
//   - github.com/google/uuid: Request correlation IDs
//
package cards

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veronikaslc/cards/internal/client"
	"github.com/veronikaslc/cards/internal/config"
	"github.com/veronikaslc/cards/internal/errors"
	"github.com/veronikaslc/cards/internal/logging"
)

// ServiceName identifies the CARDS service in errors and logs.
const ServiceName = "cards"

const sessionInfoPath = "/system/sling/info.sessionInfo.json"

// RequestIDHeader carries the correlation ID of each request.
const RequestIDHeader = "X-Request-ID"

// Client provides access to CARDS repository APIs.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a CARDS client from the resolved configuration.
func NewClient(cfg config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL:    config.NormalizeURL(cfg.CardsURL),
		username:   cfg.AdminUser,
		password:   cfg.AdminPassword,
		httpClient: client.NewHTTPClient(cfg.Timeout),
	}
	if c.username == "" {
		c.username = config.AdminUser
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised CARDS address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Query runs q against the query servlet. Any status other than 200 yields a
// query-failed error carrying the status code.
func (c *Client) Query(ctx context.Context, q Query) (*QueryResult, error) {
	target, err := BuildQueryURL(c.baseURL, q)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "Check the query parameters.")
	}

	var result QueryResult
	if err := c.getJSON(ctx, target, &result); err != nil {
		var statusErr *statusError
		if stderrors.As(err, &statusErr) {
			return nil, errors.NewQueryFailedError(statusErr.code)
		}
		return nil, err
	}
	if result.Rows == nil {
		return nil, errors.NewDecodeError("response has no \"rows\" field", nil)
	}

	return &result, nil
}

// RequiredVocabularyQuestions returns every vocabulary-typed question.
func (c *Client) RequiredVocabularyQuestions(ctx context.Context) ([]QuestionRow, error) {
	result, err := c.Query(ctx, VocabularyQuestions())
	if err != nil {
		return nil, err
	}

	rows := make([]QuestionRow, 0, len(result.Rows))
	for i, raw := range result.Rows {
		var row QuestionRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("row %d", i), err)
		}
		if row.SourceVocabularies == nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("question %s has no \"sourceVocabularies\" field", rowName(i, row.Path)), nil)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// InstalledVocabularies returns every vocabulary installed in the repository.
func (c *Client) InstalledVocabularies(ctx context.Context) ([]VocabularyRow, error) {
	result, err := c.Query(ctx, InstalledVocabularies())
	if err != nil {
		return nil, err
	}

	rows := make([]VocabularyRow, 0, len(result.Rows))
	for i, raw := range result.Rows {
		var row VocabularyRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("row %d", i), err)
		}
		if row.Identifier == "" {
			return nil, errors.NewDecodeError(fmt.Sprintf("row %d has no \"identifier\" field", i), nil)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// SessionInfo returns the identity the configured credentials authenticate as.
func (c *Client) SessionInfo(ctx context.Context) (*SessionInfo, error) {
	var info SessionInfo
	if err := c.getJSON(ctx, c.baseURL+sessionInfoPath, &info); err != nil {
		var statusErr *statusError
		if stderrors.As(err, &statusErr) {
			if statusErr.code == http.StatusUnauthorized || statusErr.code == http.StatusForbidden {
				return nil, errors.NewAuthenticationError(statusErr.Error())
			}
			return nil, errors.NewServiceUnavailableError(ServiceName, c.baseURL, statusErr)
		}
		return nil, err
	}
	return &info, nil
}

// getJSON issues an authenticated GET and decodes a 200 response into out.
// Other statuses are returned as *statusError.
func (c *Client) getJSON(ctx context.Context, target string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := RequestIDFromContext(ctx)
	httpReq.SetBasicAuth(c.username, c.password)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	logger := zap.NewNop()
	if c.logger != nil {
		logger = c.logger.WithRequestID(requestID)
	}

	resp, err := client.Do(ctx, c.httpClient, httpReq, logger)
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			return err
		}
		return errors.NewServiceUnavailableError(ServiceName, c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		logger.Info("request rejected", zap.Int("status", resp.StatusCode))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewDecodeError("decode response", err)
	}

	return nil
}

// rowName identifies a row by its node path, or by index when the servlet
// omitted the path.
func rowName(i int, path string) string {
	if path == "" {
		return fmt.Sprintf("row %d", i)
	}
	return path
}

// statusError reports a non-200 response; callers map it to a CLI error.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

type requestIDKey struct{}

// ContextWithRequestID attaches a correlation ID to ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the correlation ID in ctx, or a fresh one.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
