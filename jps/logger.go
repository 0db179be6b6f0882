package jps

import (
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/jumppoint/grid"
)

// Logger wraps slog.Logger with search-specific helpers so every component
// logs with the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithGrid tags the logger with the grid dimensions.
func (l *Logger) WithGrid(g *grid.Grid) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", g.Width, "height", g.Height),
	}
}

// LogSearch logs the outcome of one FindPath call.
// Allocation failures log at Error, every other outcome at Debug.
func (l *Logger) LogSearch(start, finish *grid.Node, res Result, err error) {
	attrs := []any{
		"start", [2]int{start.X, start.Y},
		"finish", [2]int{finish.X, finish.Y},
		"status", res.Status.String(),
		"expanded", res.Expanded,
		"jumps", res.Jumps,
	}
	switch res.Status {
	case StatusBadAlloc, StatusBadRealloc:
		l.Error("search aborted", append(attrs, "error", err)...)
	case StatusOK, StatusTrivial:
		l.Debug("search completed", append(attrs, "length", len(res.Path), "cost", res.Cost)...)
	default:
		l.Debug("search completed", attrs...)
	}
}
