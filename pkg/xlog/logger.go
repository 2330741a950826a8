package xlog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// callerDepth skips runtime.Callers, Logger.log and the exported method or
// function calling it.
const callerDepth = 3

// New returns a Logger built from c. Loggers derived with With or WithGroup
// share its level.
func New(c Config) *Logger {
	level := &slog.LevelVar{}
	level.Set(c.Level)
	return &Logger{handler: c.buildHandler(level), level: level}
}

// Logger is a leveled structured logger writing through a slog.Handler.
// Its level can be changed after creation.
type Logger struct {
	handler slog.Handler
	level   *slog.LevelVar
}

// Handler returns the underlying slog.Handler.
func (l *Logger) Handler() slog.Handler { return l.handler }

// Level returns the minimum level written.
func (l *Logger) Level() Level { return l.level.Level() }

// SetLevel changes the minimum level written by l and every Logger sharing
// its level.
func (l *Logger) SetLevel(lvl Level) { l.level.Set(lvl) }

// With returns a Logger adding args to every record. args are key-value
// pairs or slog.Attr values, as accepted by slog.Logger.With.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{handler: l.handler.WithAttrs(attrsFromArgs(args)), level: l.level}
}

// WithGroup returns a Logger qualifying the keys of later attributes with
// name. An empty name returns l.
func (l *Logger) WithGroup(name string) *Logger {
	if name == "" {
		return l
	}
	return &Logger{handler: l.handler.WithGroup(name), level: l.level}
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, level)
}

// Log writes a record at level with the attributes in args.
func (l *Logger) Log(ctx context.Context, level Level, msg string, args ...any) {
	l.log(ctx, level, msg, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(context.Background(), LevelDebug, msg, args...)
}

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(context.Background(), LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) {
	l.log(context.Background(), LevelInfo, msg, args...)
}

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.log(context.Background(), LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(context.Background(), LevelWarn, msg, args...)
}

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(context.Background(), LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) {
	l.log(context.Background(), LevelError, msg, args...)
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(context.Background(), LevelError, fmt.Sprintf(format, args...))
}

// log must be called directly by an exported method or function so that
// callerDepth points at the user code.
func (l *Logger) log(ctx context.Context, level Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(callerDepth, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.handler.Handle(ctx, r)
}
