package lenskit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lenskit-specific context.
// This provides structured logging with consistent field names.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithScorer adds a scorer name field to the logger.
func (l *Logger) WithScorer(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("scorer", name),
	}
}

// LogIndexBuilt logs the construction of a rating index.
func (l *Logger) LogIndexBuilt(ctx context.Context, ratings, users, items int) {
	l.InfoContext(ctx, "rating index built",
		"ratings", ratings,
		"users", users,
		"items", items,
	)
}

// LogTrain logs a scorer training run.
func (l *Logger) LogTrain(ctx context.Context, scorer string, users, items int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "training failed",
			"scorer", scorer,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "training completed",
			"scorer", scorer,
			"users", users,
			"items", items,
		)
	}
}

// LogUserEvaluated logs the evaluation of a single test user.
func (l *Logger) LogUserEvaluated(ctx context.Context, user int64, predicted, truth int) {
	l.DebugContext(ctx, "user evaluated",
		"user", user,
		"predicted", predicted,
		"truth", truth,
	)
}

// LogEvaluation logs an evaluation run.
func (l *Logger) LogEvaluation(ctx context.Context, users, skipped int, rmse, mae float64, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "evaluation failed",
			"users", users,
			"error", err,
		)
	case skipped > 0:
		l.WarnContext(ctx, "evaluation completed with unscorable users",
			"users", users,
			"skipped", skipped,
			"rmse", rmse,
			"mae", mae,
		)
	default:
		l.InfoContext(ctx, "evaluation completed",
			"users", users,
			"rmse", rmse,
			"mae", mae,
		)
	}
}
