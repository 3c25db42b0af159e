package logger

import (
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/sink"
)

var (
	instance     *Logger
	instanceOnce sync.Once
)

// Instance returns the process-wide logger, creating it on first use.
// The singleton starts with an empty sink registry and the inline
// writer, and stays valid until the process exits.
func Instance() *Logger {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// Destroy exists for lifecycle symmetry with Instance and does
// nothing: the singleton must survive late teardown so that records
// emitted from deferred cleanup still have somewhere to go. Calling
// it any number of times is safe.
func Destroy() {}

// Logger routes records from captures to the registered sinks through
// the active writer.
//
// The sink registry and the writer slot are read on every emission
// and mutated only administratively. Both live in atomics holding
// immutable snapshots: administrative operations copy, modify, and
// swap, while emissions load whatever snapshot is current.
// Administrative calls are not synchronized against each other; run
// them from a single goroutine, typically during startup and
// shutdown.
type Logger struct {
	sinks  atomic.Pointer[[]sink.Sink]
	writer atomic.Pointer[writerHolder]
}

// writerHolder wraps the Writer interface value so the slot fits in
// an atomic.Pointer.
type writerHolder struct {
	w Writer
}

// New creates a detached logger with an empty registry, fanning out
// inline. Most programs use Instance; New exists for tests and for
// embedding a private pipeline.
func New() *Logger {
	l := &Logger{}
	empty := make([]sink.Sink, 0)
	l.sinks.Store(&empty)
	l.writer.Store(&writerHolder{w: NewInlineWriter(l)})
	return l
}

// Add registers s. A sink with the same name replaces the previous
// one in place, keeping its position in the fan-out order; otherwise
// s is appended after the existing sinks.
func (l *Logger) Add(s sink.Sink) {
	if s == nil {
		return
	}
	cur := *l.sinks.Load()
	next := make([]sink.Sink, len(cur), len(cur)+1)
	copy(next, cur)
	for i, existing := range next {
		if existing.Name() == s.Name() {
			next[i] = s
			l.sinks.Store(&next)
			return
		}
	}
	next = append(next, s)
	l.sinks.Store(&next)
}

// Remove unregisters the sink carrying name; unknown names are
// ignored. The sink is not closed, so it can be registered again
// later.
func (l *Logger) Remove(name string) {
	cur := *l.sinks.Load()
	next := make([]sink.Sink, 0, len(cur))
	for _, s := range cur {
		if s.Name() != name {
			next = append(next, s)
		}
	}
	l.sinks.Store(&next)
}

// Get returns the registered sink carrying name, or nil
func (l *Logger) Get(name string) sink.Sink {
	for _, s := range *l.sinks.Load() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Sinks returns the current fan-out order. The returned slice is a
// copy; mutating it does not touch the registry.
func (l *Logger) Sinks() []sink.Sink {
	cur := *l.sinks.Load()
	out := make([]sink.Sink, len(cur))
	copy(out, cur)
	return out
}

// SetLevel applies level to every currently registered sink. Sinks
// registered afterwards keep whatever level they were built with.
func (l *Logger) SetLevel(level core.Level) {
	for _, s := range *l.sinks.Load() {
		s.SetLevel(level)
	}
}

// SetWriter installs w as the delivery strategy for subsequent
// records; nil restores the inline writer. The previous writer is
// closed after the swap, so a deferred writer finishes delivering
// everything it already accepted while new records go to w.
func (l *Logger) SetWriter(w Writer) {
	if w == nil {
		w = NewInlineWriter(l)
	}
	old := l.writer.Swap(&writerHolder{w: w})
	if c, ok := old.w.(io.Closer); ok {
		_ = c.Close()
	}
}

// Writer returns the active delivery strategy
func (l *Logger) Writer() Writer {
	return l.writer.Load().w
}

// Close drains and closes the active writer, then closes and removes
// every sink, leaving the inline writer installed. The logger stays
// usable; with an empty registry, emission is a cheap no-op. Close is
// idempotent, and errors from the writer and the sinks are collected
// into one.
func (l *Logger) Close() error {
	var err error

	old := l.writer.Swap(&writerHolder{w: NewInlineWriter(l)})
	if c, ok := old.w.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}

	cur := *l.sinks.Load()
	empty := make([]sink.Sink, 0)
	l.sinks.Store(&empty)
	for _, s := range cur {
		err = multierr.Append(err, s.Close())
	}
	return err
}

// dispatch hands a finished record to the active writer. The record
// belongs to the pipeline from here on.
func (l *Logger) dispatch(rec *core.Record) {
	l.writer.Load().w.Write(rec)
}

// accepts reports whether at least one registered sink would take a
// record at level.
func (l *Logger) accepts(level core.Level) bool {
	for _, s := range *l.sinks.Load() {
		if level >= s.Level() {
			return true
		}
	}
	return false
}

// writeSinks fans rec out to every registered sink in registration
// order, applying each sink's level filter at delivery time, then
// recycles the record. A sink that fails or panics does not keep the
// remaining sinks from seeing the record.
func (l *Logger) writeSinks(rec *core.Record) {
	for _, s := range *l.sinks.Load() {
		if rec.Level < s.Level() {
			continue
		}
		writeSink(s, rec)
	}
	core.PutRecord(rec)
}

// writeSink delivers rec to a single sink, absorbing its error or
// panic.
func writeSink(s sink.Sink, rec *core.Record) {
	defer func() {
		_ = recover()
	}()
	_ = s.Write(rec)
}
