package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON lines to a log file with size-based rotation.
// Rotated files are gzip-compressed.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a file logger for filePath. maxSize is in megabytes,
// maxAge in days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &FileLogger{slogLogger{logger: slog.New(handler)}}
}
