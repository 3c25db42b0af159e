package sink

import (
	"sync/atomic"

	"github.com/jfelberg/streamlog/core"
)

// Sink couples one delivery destination with a registry name and a
// minimum level.
type Sink interface {
	// Name identifies the sink within a registry
	Name() string

	// Write delivers a single record. The record is only valid for
	// the duration of the call; sinks must not retain it. The
	// returned error is advisory: the dispatcher counts it and moves
	// on, it never reaches the logging caller.
	Write(rec *core.Record) error

	// Level returns the minimum level this sink accepts
	Level() core.Level

	// SetLevel changes the minimum level this sink accepts
	SetLevel(level core.Level)

	// Close releases resources held by the sink
	Close() error
}

// levelVar holds a sink's minimum level. Reads happen on every
// delivery while SetLevel may run on an administrative goroutine,
// hence the atomic.
type levelVar struct {
	v atomic.Int32
}

// Level returns the minimum level this sink accepts
func (l *levelVar) Level() core.Level {
	return core.Level(l.v.Load())
}

// SetLevel changes the minimum level this sink accepts
func (l *levelVar) SetLevel(level core.Level) {
	l.v.Store(int32(level))
}
