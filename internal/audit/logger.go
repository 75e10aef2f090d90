// Package audit provides audit logging for operations run with administrator
// credentials.
//
// Purpose:
//
//	Record who ran which query against which CARDS instance, with what outcome
//	and how long it took. Sensitive parameters are masked before they reach the
//	log sink.
//
// Dependencies:
//   - go.uber.org/zap: Structured log output
//   - internal/logging: Field redaction
//
package audit

import (
	"time"

	"go.uber.org/zap"

	"github.com/veronikaslc/cards/internal/logging"
)

// Outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Logger emits audit entries through a zap logger.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new audit logger. A nil logger discards entries.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("audit")}
}

// Operation represents a privileged operation to be logged.
type Operation struct {
	Type         string                 // vocabularies_required, vocabularies_missing, check
	UserIdentity string                 // basic-auth user
	Command      string                 // command path, e.g. "vocabularies required"
	Target       string                 // CARDS base address
	RequestID    string                 // correlation ID sent as X-Request-ID
	Parameters   map[string]interface{} // masked before logging
	Outcome      string                 // success, failure
	Duration     time.Duration
	Error        error
}

// LogOperation logs op. Failures are logged at warn level, successes at info.
func (l *Logger) LogOperation(op Operation) {
	fields := []zap.Field{
		zap.String("operation", op.Type),
		zap.String("user_identity", op.UserIdentity),
		zap.String("command", op.Command),
		zap.String("target", op.Target),
		zap.String("outcome", op.Outcome),
	}
	if op.RequestID != "" {
		fields = append(fields, zap.String("request_id", op.RequestID))
	}
	if len(op.Parameters) > 0 {
		fields = append(fields, zap.Any("parameters", logging.RedactFields(op.Parameters)))
	}
	if op.Duration > 0 {
		fields = append(fields, zap.Duration("duration", op.Duration))
	}

	if op.Error != nil || op.Outcome == OutcomeFailure {
		if op.Error != nil {
			fields = append(fields, zap.Error(op.Error))
		}
		l.logger.Warn("privileged operation", fields...)
		return
	}
	l.logger.Info("privileged operation", fields...)
}
