// Package xlog is a leveled logger over log/slog whose Logger travels in
// context.Context.
package xlog

import (
	"context"
	"fmt"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(NewConfig()))
}

// Default returns the default Logger.
func Default() *Logger { return defaultLogger.Load() }

// SetDefault makes l the default Logger.
func SetDefault(l *Logger) { defaultLogger.Store(l) }

// SetLevel changes the level of the default Logger.
func SetLevel(lvl Level) { Default().SetLevel(lvl) }

// Debug logs at LevelDebug with the default Logger.
func Debug(msg string, args ...any) {
	Default().log(context.Background(), LevelDebug, msg, args...)
}

// Debugf logs a formatted message at LevelDebug with the default Logger.
func Debugf(format string, args ...any) {
	Default().log(context.Background(), LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs at LevelInfo with the default Logger.
func Info(msg string, args ...any) {
	Default().log(context.Background(), LevelInfo, msg, args...)
}

// Infof logs a formatted message at LevelInfo with the default Logger.
func Infof(format string, args ...any) {
	Default().log(context.Background(), LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at LevelWarn with the default Logger.
func Warn(msg string, args ...any) {
	Default().log(context.Background(), LevelWarn, msg, args...)
}

// Error logs at LevelError with the default Logger.
func Error(msg string, args ...any) {
	Default().log(context.Background(), LevelError, msg, args...)
}
