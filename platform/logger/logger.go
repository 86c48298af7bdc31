// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// UserIDKey is the context key for user ID
	UserIDKey contextKey = "user_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with request_id and user_id extracted from context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		newLogger = newLogger.WithRequestID(requestID)
	}

	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		newLogger = &Logger{
			Logger: newLogger.With(slog.String("user_id", userID)),
		}
	}

	return newLogger
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// SearchPerformed logs one search pass: the query, the active scope and the hit count.
func (l *Logger) SearchPerformed(query, screen string, scopeSize, hits int) {
	l.Debug("search_performed",
		slog.String("query", query),
		slog.String("screen", screen),
		slog.Int("scope_size", scopeSize),
		slog.Int("hits", hits),
	)
}

// VoiceCommand logs a classified voice utterance.
func (l *Logger) VoiceCommand(language, intent string, recognized bool) {
	l.Info("voice_command",
		slog.String("language", language),
		slog.String("intent", intent),
		slog.Bool("recognized", recognized),
	)
}

// DispatchSkipped logs a dispatch that was dropped (missing handler, unknown screen).
// Dispatch failures are terminal no-ops, so the warning is the only trace they leave.
func (l *Logger) DispatchSkipped(screen, reason string) {
	l.Warn("dispatch_skipped",
		slog.String("screen", screen),
		slog.String("reason", reason),
	)
}

// SourceFailure logs a data source that failed during search projection.
func (l *Logger) SourceFailure(category string, err any) {
	l.Warn("search_source_failure",
		slog.String("category", category),
		slog.Any("error", err),
	)
}

// AuthEvent logs authentication events
func (l *Logger) AuthEvent(event, username string, success bool, reason string) {
	if success {
		l.Info("auth_event",
			slog.String("event", event),
			slog.String("username", username),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("auth_event",
			slog.String("event", event),
			slog.String("username", username),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
