package crcgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with crcgo-specific context.
// Every record carries component=crcgo; engine construction adds the
// algorithm and strategy fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger on handler.
// If handler is nil, logs text at Info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{
		Logger: slog.New(handler).With("component", "crcgo"),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
// level sets the minimum log level; construction events are logged at Debug.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all records.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithAlgorithm adds an algorithm name field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogResolve logs the strategy Auto resolved to and the CPU features seen.
func (l *Logger) LogResolve(override string, features []string) {
	l.Debug("strategy resolved",
		"override", override,
		"cpu_features", features,
	)
}

// LogBuild logs an engine construction.
func (l *Logger) LogBuild(tables int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("engine build failed", "error", err)
		return
	}
	l.Debug("engine built",
		"tables", tables,
		"elapsed", elapsed,
	)
}

// LogSelfTest logs a check-vector self-test.
func (l *Logger) LogSelfTest(err error) {
	if err != nil {
		l.Error("self-test failed", "error", err)
		return
	}
	l.Debug("self-test passed")
}
