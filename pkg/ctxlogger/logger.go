package ctxlogger

import (
	"context"

	"github.com/IsaacDSC/trendforge/pkg/logs"
)

type loggerKey struct{}

type requestIDKey struct{}

// WithLogger stores logger on ctx.
func WithLogger(ctx context.Context, logger *logs.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger stored on ctx or the process default.
func GetLogger(ctx context.Context) *logs.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*logs.Logger); ok {
		return logger
	}

	return logs.Default()
}

// WithRequestID stores the request id so outbound calls can propagate it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
