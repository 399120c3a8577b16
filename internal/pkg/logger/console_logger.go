package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger writes human-readable text lines to stdout. The REST API
// and the CLI both default to this type.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger filtering below level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
