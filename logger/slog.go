package logger

import (
	"context"
	"log/slog"

	"github.com/jfelberg/streamlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so streamlog can serve as a drop-in backend for log/slog.
// Attributes are rendered into the record's message body as
// " key=value" text.
type SlogHandler struct {
	l     *Logger
	attrs []slog.Attr // pre-qualified with the group current at WithAttrs time
	group string
}

// NewSlogHandler creates a slog.Handler adapter for l; nil selects
// the process logger.
func NewSlogHandler(l *Logger) *SlogHandler {
	if l == nil {
		l = Instance()
	}
	return &SlogHandler{l: l}
}

// Enabled reports whether any registered sink would accept a record
// at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.l.accepts(slogLevelToCore(level))
}

// Handle converts a slog.Record and dispatches it through the active
// writer.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.GetRecord()
	if !record.Time.IsZero() {
		rec.Time = record.Time
	}
	rec.Level = slogLevelToCore(record.Level)
	rec.Caller = core.CallerFromPC(record.PC)
	rec.AppendString(record.Message)

	// Pre-configured attrs, already carrying their group prefix
	for _, a := range h.attrs {
		appendAttr(rec, "", a)
	}

	// Record attrs
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(rec, h.group, a)
		return true
	})

	h.l.dispatch(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes,
// qualified by the group in effect now.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		l:     h.l,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new SlogHandler that prefixes subsequent
// attribute keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &SlogHandler{
		l:     h.l,
		attrs: h.attrs,
		group: newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels below
// slog.LevelDebug map to TraceLevel.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders one attribute as " key=value" text, flattening
// groups into dotted key prefixes.
func appendAttr(rec *core.Record, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		g := a.Key
		if group != "" {
			g = group + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			appendAttr(rec, g, ga)
		}
		return
	}

	if a.Key == "" {
		return
	}
	rec.AppendString(" ")
	if group != "" {
		rec.AppendString(group)
		rec.AppendString(".")
	}
	rec.AppendString(a.Key)
	rec.AppendString("=")
	rec.AppendString(a.Value.String())
}
