package xlog

import (
	"context"
)

// C is a short alias of FromContext.
var C = FromContext

type loggerKey struct{}

// FromContext returns the Logger carried by ctx, or the default Logger.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
			return l
		}
	}
	return Default()
}

// NewContext returns a child of ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithContext returns a child of ctx whose Logger adds args to every record.
func WithContext(ctx context.Context, args ...any) context.Context {
	return NewContext(ctx, FromContext(ctx).With(args...))
}
