package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler duplicates every record to each child handler. It backs the
// console+file pairing: the console shows intention icons at the configured
// level while the file keeps a full debug trail.
type fanoutHandler struct {
	children []slog.Handler
}

func newFanoutHandler(children ...slog.Handler) slog.Handler {
	return &fanoutHandler{children: children}
}

// Enabled reports true when any child would accept the level, so a record is
// never dropped before the child that wants it sees it.
func (f *fanoutHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, h := range f.children {
		if h.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every enabled child. One child failing does
// not stop delivery to the others; failures are joined afterwards.
func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.children {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make([]slog.Handler, len(f.children))
	for i, h := range f.children {
		children[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{children: children}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	children := make([]slog.Handler, len(f.children))
	for i, h := range f.children {
		children[i] = h.WithGroup(name)
	}
	return &fanoutHandler{children: children}
}
