package batchtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with batchtree-specific helpers so operations
// log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBatch adds a batch index field to the logger.
func (l *Logger) WithBatch(index uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("batch", index),
	}
}

// WithItem adds an item name field to the logger.
func (l *Logger) WithItem(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("item", name),
	}
}

// LogBuild logs a tree construction.
func (l *Logger) LogBuild(items int, err error) {
	if err != nil {
		l.Error("tree build failed",
			"items", items,
			"error", err,
		)
	} else {
		l.Info("tree build completed",
			"items", items,
		)
	}
}

// LogAddBatch logs a batch ingestion.
func (l *Logger) LogAddBatch(committed int, err error) {
	if err != nil {
		l.Error("batch ingestion failed",
			"committed", committed,
			"error", err,
		)
	} else {
		l.Info("batch ingestion completed",
			"committed", committed,
		)
	}
}

// LogDeleteBatch logs a batch retirement.
func (l *Logger) LogDeleteBatch(index uint32, err error) {
	if err != nil {
		l.Error("batch delete failed",
			"batch", index,
			"error", err,
		)
	} else {
		l.Info("batch deleted",
			"batch", index,
		)
	}
}

// LogQuery logs a projection query.
func (l *Logger) LogQuery(op string, results int, err error) {
	if err != nil {
		l.Debug("query failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("query completed",
			"op", op,
			"results", results,
		)
	}
}
