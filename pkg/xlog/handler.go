package xlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// fanout returns a slog.Handler writing every record to all handlers.
func fanout(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

type fanoutHandler struct {
	handlers []slog.Handler
}

// Enabled implements slog.Handler.
func (h *fanoutHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return lo.SomeBy(h.handlers, func(item slog.Handler) bool {
		return item.Enabled(ctx, lvl)
	})
}

// Handle implements slog.Handler. Every enabled handler gets the record even
// when a previous one failed.
func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, item := range h.handlers {
		if !item.Enabled(ctx, r.Level) {
			continue
		}
		if err := safeHandle(ctx, item, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return fanout(lo.Map(h.handlers, func(item slog.Handler, _ int) slog.Handler {
		return item.WithAttrs(attrs)
	})...)
}

// WithGroup implements slog.Handler.
func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return fanout(lo.Map(h.handlers, func(item slog.Handler, _ int) slog.Handler {
		return item.WithGroup(name)
	})...)
}

func safeHandle(ctx context.Context, h slog.Handler, r slog.Record) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("log handler panic: %v", v)
		}
	}()
	return h.Handle(ctx, r)
}
