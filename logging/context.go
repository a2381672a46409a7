package logging

import (
	"context"
	"log/slog"
)

type ctxLogger struct{}

// ContextWithLogger stores l in ctx for command-scoped logging.
func ContextWithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxLogger{}, l)
}

// loggerFromContext falls back to the default logger when ctx carries none.
func loggerFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxLogger{}).(*Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
