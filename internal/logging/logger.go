// Package logging provides structured logging for cards-admin.
//
// Purpose:
//
//	Configure zap once per invocation. Diagnostics go to stderr so that stdout
//	carries only command results. Credentials are redacted before they reach
//	a log line.
//
// Dependencies:
//   - go.uber.org/zap: Structured logging
//
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with standardized configuration.
type Logger struct {
	*zap.Logger
	console bool
}

// New creates a logger that writes to w.
func New(cfg Config, w io.Writer) *Logger {
	cfg = cfg.withDefaults()

	level := parseLogLevel(cfg.LogLevel)
	encoderConfig := getEncoderConfig(cfg.IsDevelopment())

	var encoder zapcore.Encoder
	if cfg.IsDevelopment() {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("service", cfg.ServiceName),
			zap.String("environment", cfg.Environment),
		),
	}
	if cfg.IsDevelopment() {
		opts = append(opts, zap.AddCaller())
	}

	return &Logger{
		Logger:  zap.New(core, opts...),
		console: w == os.Stderr || w == os.Stdout,
	}
}

// WithRequestID returns a logger with request_id field.
func (l *Logger) WithRequestID(requestID string) *zap.Logger {
	return l.Logger.With(zap.String("request_id", requestID))
}

// Sync flushes any buffered log entries. Syncing a terminal returns
// EINVAL on some platforms; that case is ignored.
func (l *Logger) Sync() error {
	err := l.Logger.Sync()
	if err != nil && l.console {
		return nil
	}
	return err
}

// parseLogLevel converts a string log level to zapcore.Level.
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// getEncoderConfig returns encoder config based on environment.
func getEncoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
