package logger

import "github.com/jfelberg/streamlog/core"

// Writer is the delivery strategy between the dispatcher and the
// sinks. Exactly one writer is active per logger at a time; see
// Logger.SetWriter. A writer that owns resources also implements
// io.Closer, and its Close must fan out whatever the writer already
// accepted before returning. Records handed to a writer while it is
// being replaced or closed may be dropped.
type Writer interface {
	// Write takes ownership of rec and sees that it reaches the
	// sinks, immediately or later.
	Write(rec *core.Record)
}

// InlineWriter fans records out on the calling goroutine: by the time
// Write returns, every interested sink has seen the record. It is the
// writer every logger starts with.
type InlineWriter struct {
	l *Logger
}

// NewInlineWriter creates the synchronous delivery strategy for l
func NewInlineWriter(l *Logger) *InlineWriter {
	return &InlineWriter{l: l}
}

// Write fans rec out immediately
func (w *InlineWriter) Write(rec *core.Record) {
	w.l.writeSinks(rec)
}
