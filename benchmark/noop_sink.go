package benchmark

import (
	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/sink"
)

// noopSink accepts every record and formats nothing, isolating the
// pipeline cost from the formatting cost.
type noopSink struct{}

func newNoopSink() sink.Sink {
	return &noopSink{}
}

func (s *noopSink) Name() string {
	return "noop"
}

func (s *noopSink) Write(rec *core.Record) error {
	_ = len(rec.Bytes())
	return nil
}

func (s *noopSink) Level() core.Level {
	return core.TraceLevel
}

func (s *noopSink) SetLevel(core.Level) {}

func (s *noopSink) Close() error {
	return nil
}
