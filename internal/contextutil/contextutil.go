// Package contextutil carries per-request values (request id, scoped logger)
// through context.Context.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns "" when no id was attached.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger picks the request logger, then fallback, then a no-op logger.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	for _, l := range []*zap.Logger{fromContext(ctx), fallback} {
		if l != nil {
			return l
		}
	}
	return zap.NewNop()
}

func fromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(loggerKey{}).(*zap.Logger)
	return l
}
