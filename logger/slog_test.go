package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfelberg/streamlog/core"
)

func TestSlogHandler_RoutesThroughLogger(t *testing.T) {
	l, s := newCaptureLogger()
	sl := slog.New(NewSlogHandler(l))

	sl.Info("request served", "status", 200, "path", "/healthz")

	require.Equal(t, []string{"request served status=200 path=/healthz"}, s.Messages())
	assert.Equal(t, []core.Level{core.InfoLevel}, s.Levels())

	callers := s.Callers()
	require.Len(t, callers, 1)
	assert.True(t, callers[0].Defined)
	assert.Equal(t, "slog_test.go", callers[0].ShortFile)
}

func TestSlogHandler_LevelMapping(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.Level(-8), core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.Level(-1), core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.Level(2), core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.Level(12), core.ErrorLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slogLevelToCore(tc.in), "slog level %v", tc.in)
	}
}

func TestSlogHandler_EnabledConsultsSinkLevels(t *testing.T) {
	l := New()
	h := NewSlogHandler(l)
	ctx := context.Background()

	// No sinks registered: nothing would accept the record
	assert.False(t, h.Enabled(ctx, slog.LevelError))

	l.Add(newCaptureSink("quiet", core.WarnLevel))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
}

func TestSlogHandler_SkipsDisabledRecords(t *testing.T) {
	l := New()
	s := newCaptureSink("quiet", core.ErrorLevel)
	l.Add(s)
	sl := slog.New(NewSlogHandler(l))

	sl.Info("filtered before it is built")
	sl.Error("kept")

	assert.Equal(t, []string{"kept"}, s.Messages())
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	l, s := newCaptureLogger()

	sl := slog.New(NewSlogHandler(l)).
		With("service", "api").
		WithGroup("req").
		With("id", "42")

	sl.Info("handled", "method", "GET")

	require.Equal(t, []string{"handled service=api req.id=42 req.method=GET"}, s.Messages())
}

func TestSlogHandler_FlattensGroupValues(t *testing.T) {
	l, s := newCaptureLogger()
	sl := slog.New(NewSlogHandler(l))

	sl.Info("query done", slog.Group("db", slog.String("op", "get"), slog.Int("rows", 3)))

	require.Equal(t, []string{"query done db.op=get db.rows=3"}, s.Messages())
}

func TestSlogHandler_EmptyModifiersAreNoops(t *testing.T) {
	l, s := newCaptureLogger()
	h := NewSlogHandler(l)

	assert.Same(t, slog.Handler(h), h.WithGroup(""))
	assert.Same(t, slog.Handler(h), h.WithAttrs(nil))

	// Attributes with empty keys are dropped rather than rendered
	slog.New(h).Info("bare", slog.String("", "ignored"))
	assert.Equal(t, []string{"bare"}, s.Messages())
}

func TestNewSlogHandler_NilUsesProcessLogger(t *testing.T) {
	h := NewSlogHandler(nil)
	assert.Same(t, Instance(), h.l)
}
