// Package errors provides structured error types and recovery suggestions.
//
// Purpose:
//
//	Define consistent error types across all CLI commands with recovery suggestions
//	and process exit codes. A non-200 answer to the vocabulary query has its own
//	kind, separate from transport and decoding failures.
//
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a standardized error code.
type ErrorCode string

const (
	// ErrCodeQueryFailed indicates the repository answered a query with a non-200 status.
	ErrCodeQueryFailed ErrorCode = "QUERY_FAILED"
	// ErrCodeServiceUnavailable indicates the CARDS service could not be reached.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeDecodeFailed indicates a response body did not have the expected shape.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
	// ErrCodeValidationFailed indicates input validation failure.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	// ErrCodeUsage indicates incorrect command usage.
	ErrCodeUsage ErrorCode = "USAGE_ERROR"
)

// QueryFailedMessage is printed on standard output when the vocabulary query
// is rejected. Scripts match on it.
const QueryFailedMessage = "Vocabularies query failed"

// Exit codes.
const (
	ExitGeneral            = 1
	ExitUsage              = 2
	ExitServiceUnavailable = 3
	// ExitQueryFailed is reported by the shell as 255.
	ExitQueryFailed = -1
)

// CLIError represents a structured CLI error with recovery suggestions.
type CLIError struct {
	Code       ErrorCode
	Message    string
	Suggestion string
	Details    string
	ExitCode   int

	// StatusCode is the HTTP status that produced the error, if any.
	StatusCode int
	// Reported is set once the error has already been shown to the user.
	Reported bool

	cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Suggestion != "" {
		msg += "\n\nSuggestion: " + e.Suggestion
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.cause
}

// Is matches CLIErrors by code so callers can use errors.Is with a sentinel.
func (e *CLIError) Is(target error) bool {
	t, ok := target.(*CLIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// ErrQueryFailed matches any query-failed error via errors.Is.
var ErrQueryFailed = &CLIError{Code: ErrCodeQueryFailed}

// NewQueryFailedError creates an error for a query rejected with the given status.
func NewQueryFailedError(statusCode int) *CLIError {
	return &CLIError{
		Code:       ErrCodeQueryFailed,
		Message:    QueryFailedMessage,
		Details:    fmt.Sprintf("status %d", statusCode),
		Suggestion: "Verify ADMIN_PASSWORD and that CARDS_URL points at a running CARDS instance.",
		ExitCode:   ExitQueryFailed,
		StatusCode: statusCode,
	}
}

// NewServiceUnavailableError creates an error for service unavailability.
func NewServiceUnavailableError(service, endpoint string, cause error) *CLIError {
	details := fmt.Sprintf("Endpoint: %s", endpoint)
	if cause != nil {
		details += fmt.Sprintf(" (%v)", cause)
	}
	return &CLIError{
		Code:       ErrCodeServiceUnavailable,
		Message:    fmt.Sprintf("Service '%s' is unavailable", service),
		Details:    details,
		Suggestion: fmt.Sprintf("Verify '%s' is running and accessible at %s. Check network connectivity.", service, endpoint),
		ExitCode:   ExitServiceUnavailable,
		cause:      cause,
	}
}

// NewDecodeError creates an error for a response body of unexpected shape.
func NewDecodeError(what string, cause error) *CLIError {
	details := what
	if cause != nil {
		details = fmt.Sprintf("%s: %v", what, cause)
	}
	return &CLIError{
		Code:       ErrCodeDecodeFailed,
		Message:    "Unexpected response",
		Details:    details,
		Suggestion: "The CARDS query servlet returned a body that is not the expected JSON. Check the server version.",
		ExitCode:   ExitGeneral,
		cause:      cause,
	}
}

// NewAuthenticationError creates an error for authentication failures.
func NewAuthenticationError(details string) *CLIError {
	return &CLIError{
		Code:       ErrCodeAuthenticationFailed,
		Message:    "Authentication failed",
		Details:    details,
		Suggestion: "Verify ADMIN_PASSWORD matches the CARDS admin account.",
		ExitCode:   ExitGeneral,
	}
}

// NewValidationError creates an error for validation failures.
func NewValidationError(message, suggestion string) *CLIError {
	return &CLIError{
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		Details:    message,
		Suggestion: suggestion,
		ExitCode:   ExitUsage,
	}
}

// NewUsageError creates an error for incorrect usage.
func NewUsageError(message string) *CLIError {
	return &CLIError{
		Code:       ErrCodeUsage,
		Message:    "Incorrect usage",
		Details:    message,
		Suggestion: "Run with --help for usage information.",
		ExitCode:   ExitUsage,
	}
}

// ExitCode returns the process exit code for err. Nil maps to 0 and errors
// that are not CLIErrors map to ExitGeneral.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode
	}
	return ExitGeneral
}

// IsReported reports whether err has already been shown to the user.
func IsReported(err error) bool {
	var cliErr *CLIError
	return errors.As(err, &cliErr) && cliErr.Reported
}
