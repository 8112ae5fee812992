package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// consoleMetaKeys are structured attributes that never appear on the console line.
var consoleMetaKeys = map[string]bool{
	"intention": true,
	"time":      true,
	"level":     true,
	"msg":       true,
	"component": true,
}

// plainHandler is a minimal slog.Handler that prints only the message
// (already prefixed by any emoji/icon) and appends key=value pairs, without
// time/level decorations. Intended for clean console output.
type plainHandler struct {
	w       io.Writer
	attrs   []slog.Attr
	mu      sync.Mutex
	leveler slog.Leveler
}

func newPlainHandler(w io.Writer, leveler slog.Leveler) slog.Handler {
	return &plainHandler{w: w, leveler: leveler}
}

// Enabled implements slog.Handler by checking level
func (h *plainHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	if h.leveler == nil {
		return true
	}
	return lvl >= h.leveler.Level()
}

// Handle prints the message and key=value pairs without time/level prefixes
func (h *plainHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Extract intention (from bound attrs or record attrs)
	intention := ""
	probe := func(a slog.Attr) {
		if a.Key == "intention" {
			if s, ok := a.Value.Any().(string); ok {
				intention = s
			} else {
				intention = a.Value.String()
			}
		}
	}
	eachAttr(h.attrs, probe)
	r.Attrs(func(a slog.Attr) bool {
		probe(a)
		if a.Value.Kind() == slog.KindGroup {
			for _, ga := range a.Value.Group() {
				probe(ga)
			}
		}
		return true
	})

	// Build a single line: icon (from intention) + message plus key=val pairs
	icon := ""
	if intention != "" {
		icon = iconFor(Intention(intention)) + " "
	}
	line := icon + r.Message

	appendAttr := func(a slog.Attr) {
		if !consoleMetaKeys[a.Key] {
			line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		}
	}

	// Bound attributes first, then record attributes
	eachAttr(h.attrs, appendAttr)
	r.Attrs(func(a slog.Attr) bool {
		if a.Value.Kind() == slog.KindGroup {
			for _, ga := range a.Value.Group() {
				appendAttr(ga)
			}
		} else {
			appendAttr(a)
		}
		return true
	})

	if _, err := fmt.Fprintln(h.w, line); err != nil {
		return err
	}
	return nil
}

// eachAttr visits attrs, flattening one level of groups.
func eachAttr(attrs []slog.Attr, visit func(slog.Attr)) {
	for _, a := range attrs {
		if a.Value.Kind() == slog.KindGroup {
			for _, ga := range a.Value.Group() {
				visit(ga)
			}
		} else {
			visit(a)
		}
	}
}

// WithAttrs returns a new handler with additional attributes bound
func (h *plainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &plainHandler{w: h.w, leveler: h.leveler}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

// WithGroup groups attributes; for plain output we encode as a group attr
func (h *plainHandler) WithGroup(name string) slog.Handler {
	nh := &plainHandler{w: h.w, leveler: h.leveler}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), slog.Group(name))
	return nh
}
