package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCommand is the key for the CLI command path (e.g. "add character").
	FieldCommand = "command"
	// FieldShow is the key for show names.
	FieldShow = "show"
	// FieldCharacter is the key for character names.
	FieldCharacter = "character"
	// FieldPath is the key for file system paths.
	FieldPath = "path"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries a next step for the reader of a warning.
	FieldErrorHint = "error_hint"
)

type commandKey struct{}

// WithCommand stores the running command path on ctx.
func WithCommand(ctx context.Context, command string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, commandKey{}, command)
}

// CommandFromContext returns the command path stored by WithCommand.
func CommandFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	command, ok := ctx.Value(commandKey{}).(string)
	return command, ok && command != ""
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if command, ok := CommandFromContext(ctx); ok {
		return logger.With(String(FieldCommand, command))
	}
	return logger
}
