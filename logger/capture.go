package logger

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"

	"github.com/jfelberg/streamlog/core"
)

// Capture accumulates one record before it enters the pipeline.
//
// A capture is created by the level methods on Logger, carries the
// record while the caller appends message text, and hands the record
// to the dispatcher exactly once: on Flush, or on the End that
// releases the last reference. After that handoff, and after Clear,
// the capture is spent and every method is a no-op.
//
// A capture is not safe for concurrent use. Share one across scopes
// only through Retain, with each holder calling End exactly once, and
// keep the appends on a single goroutine at a time.
type Capture struct {
	l    *Logger
	rec  *core.Record
	refs int32
}

// captureSkip is the caller depth from GetCaller through at to the
// exported entry point's caller. Every exported entry point calls at
// directly so the constant holds for all of them.
const captureSkip = 3

// at creates a capture for level, stamping time and call site now
func (l *Logger) at(level core.Level, skip int) *Capture {
	rec := core.GetRecord()
	rec.Level = level
	rec.Caller = core.GetCaller(skip)
	return &Capture{l: l, rec: rec, refs: 1}
}

// At starts a record at an arbitrary level. Like all capture
// constructors it stamps the timestamp and call site immediately;
// the message is whatever the caller appends before the handoff.
func (l *Logger) At(level core.Level) *Capture {
	return l.at(level, captureSkip)
}

// Trace starts a trace-level record
func (l *Logger) Trace() *Capture {
	return l.at(core.TraceLevel, captureSkip)
}

// Debug starts a debug-level record
func (l *Logger) Debug() *Capture {
	return l.at(core.DebugLevel, captureSkip)
}

// Info starts an info-level record
func (l *Logger) Info() *Capture {
	return l.at(core.InfoLevel, captureSkip)
}

// Warn starts a warn-level record
func (l *Logger) Warn() *Capture {
	return l.at(core.WarnLevel, captureSkip)
}

// Error starts an error-level record
func (l *Logger) Error() *Capture {
	return l.at(core.ErrorLevel, captureSkip)
}

// Tracef formats and emits a trace-level record in one call
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.at(core.TraceLevel, captureSkip).Printf(format, args...).End()
}

// Debugf formats and emits a debug-level record in one call
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.at(core.DebugLevel, captureSkip).Printf(format, args...).End()
}

// Infof formats and emits an info-level record in one call
func (l *Logger) Infof(format string, args ...interface{}) {
	l.at(core.InfoLevel, captureSkip).Printf(format, args...).End()
}

// Warnf formats and emits a warn-level record in one call
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.at(core.WarnLevel, captureSkip).Printf(format, args...).End()
}

// Errorf formats and emits an error-level record in one call
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.at(core.ErrorLevel, captureSkip).Printf(format, args...).End()
}

// Print appends its arguments to the message, fmt.Sprint style
func (c *Capture) Print(args ...interface{}) *Capture {
	if c == nil || c.rec == nil {
		return c
	}
	fmt.Fprint(c, args...)
	return c
}

// Printf appends a formatted string to the message
func (c *Capture) Printf(format string, args ...interface{}) *Capture {
	if c == nil || c.rec == nil {
		return c
	}
	fmt.Fprintf(c, format, args...)
	return c
}

// Write appends p to the message body. It implements io.Writer so the
// fmt machinery, and anything else that produces bytes, can target a
// capture directly. A spent capture reports success and discards p.
func (c *Capture) Write(p []byte) (int, error) {
	if c == nil || c.rec == nil {
		return len(p), nil
	}
	c.rec.AppendBytes(p)
	return len(p), nil
}

// Ctx stamps the record with the trace and span IDs of the span
// carried by ctx, when that span context is valid.
func (c *Capture) Ctx(ctx context.Context) *Capture {
	if c == nil || c.rec == nil || ctx == nil {
		return c
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		c.rec.TraceID = sc.TraceID().String()
	}
	if sc.HasSpanID() {
		c.rec.SpanID = sc.SpanID().String()
	}
	return c
}

// Clear discards everything appended so far and suppresses the
// handoff: the capture is spent and the final End emits nothing.
func (c *Capture) Clear() *Capture {
	if c == nil || c.rec == nil {
		return c
	}
	core.PutRecord(c.rec)
	c.rec = nil
	return c
}

// Flush hands the record over immediately instead of waiting for the
// final End. Appends and Ends after Flush are no-ops.
func (c *Capture) Flush() *Capture {
	if c == nil || c.rec == nil {
		return c
	}
	c.emit()
	return c
}

// Retain adds a reference so the capture can outlive its creating
// scope. Each holder must call End; the record is handed over on the
// last one.
func (c *Capture) Retain() *Capture {
	if c == nil {
		return nil
	}
	atomic.AddInt32(&c.refs, 1)
	return c
}

// End releases one reference. Dropping the last reference hands the
// record to the dispatcher, unless the capture is empty, was cleared,
// or was already flushed.
func (c *Capture) End() {
	if c == nil {
		return
	}
	if atomic.AddInt32(&c.refs, -1) > 0 {
		return
	}
	if c.rec == nil {
		return
	}
	if c.rec.Empty() {
		// Nothing was appended; recycle quietly
		core.PutRecord(c.rec)
		c.rec = nil
		return
	}
	c.emit()
}

// emit transfers the record to the pipeline and marks the capture
// spent.
func (c *Capture) emit() {
	rec := c.rec
	c.rec = nil
	c.l.dispatch(rec)
}
