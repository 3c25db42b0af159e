package logger

import (
	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/sink"
)

// Package-level convenience functions using the process-wide logger.
// Each capture constructor calls Instance().at directly so the caller
// skip stays uniform with the Logger methods.

// Add registers a sink with the process logger
func Add(s sink.Sink) {
	Instance().Add(s)
}

// Remove unregisters the named sink from the process logger
func Remove(name string) {
	Instance().Remove(name)
}

// Get returns the named sink of the process logger, or nil
func Get(name string) sink.Sink {
	return Instance().Get(name)
}

// SetWriter swaps the process logger's delivery strategy
func SetWriter(w Writer) {
	Instance().SetWriter(w)
}

// SetLevel applies level to every sink currently registered with the
// process logger.
func SetLevel(level core.Level) {
	Instance().SetLevel(level)
}

// Close drains the process logger's writer and closes its sinks
func Close() error {
	return Instance().Close()
}

// At starts a record at an arbitrary level on the process logger
func At(level core.Level) *Capture {
	return Instance().at(level, captureSkip)
}

// Trace starts a trace-level record on the process logger
func Trace() *Capture {
	return Instance().at(core.TraceLevel, captureSkip)
}

// Debug starts a debug-level record on the process logger
func Debug() *Capture {
	return Instance().at(core.DebugLevel, captureSkip)
}

// Info starts an info-level record on the process logger
func Info() *Capture {
	return Instance().at(core.InfoLevel, captureSkip)
}

// Warn starts a warn-level record on the process logger
func Warn() *Capture {
	return Instance().at(core.WarnLevel, captureSkip)
}

// Error starts an error-level record on the process logger
func Error() *Capture {
	return Instance().at(core.ErrorLevel, captureSkip)
}

// Tracef formats and emits a trace-level record on the process logger
func Tracef(format string, args ...interface{}) {
	Instance().at(core.TraceLevel, captureSkip).Printf(format, args...).End()
}

// Debugf formats and emits a debug-level record on the process logger
func Debugf(format string, args ...interface{}) {
	Instance().at(core.DebugLevel, captureSkip).Printf(format, args...).End()
}

// Infof formats and emits an info-level record on the process logger
func Infof(format string, args ...interface{}) {
	Instance().at(core.InfoLevel, captureSkip).Printf(format, args...).End()
}

// Warnf formats and emits a warn-level record on the process logger
func Warnf(format string, args ...interface{}) {
	Instance().at(core.WarnLevel, captureSkip).Printf(format, args...).End()
}

// Errorf formats and emits an error-level record on the process logger
func Errorf(format string, args ...interface{}) {
	Instance().at(core.ErrorLevel, captureSkip).Printf(format, args...).End()
}
