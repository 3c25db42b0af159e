package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// maxPooledBufferSize caps the message buffers the pool retains.
// Records that grew beyond it get a fresh buffer on reuse.
const maxPooledBufferSize = 4 * 1024

// Record represents a single log event with all its metadata.
//
// A producer builds the message body incrementally through the append
// methods. Once the record is handed to a writer it must be treated as
// immutable: the fan-out loop recycles it after the last sink returns,
// so sinks must not retain a Record past Write.
type Record struct {
	Time   time.Time
	Level  Level
	Caller CallerInfo

	// TraceID and SpanID correlate the record with a distributed
	// trace. Empty when no span context was attached.
	TraceID string
	SpanID  string

	buf []byte
}

// AppendString appends s to the message body.
func (r *Record) AppendString(s string) {
	r.buf = append(r.buf, s...)
}

// AppendBytes appends p to the message body.
func (r *Record) AppendBytes(p []byte) {
	r.buf = append(r.buf, p...)
}

// Message returns the message body accumulated so far.
func (r *Record) Message() string {
	return string(r.buf)
}

// Bytes returns the message body without copying. The returned slice
// aliases the record's buffer and is only valid until the record is
// recycled.
func (r *Record) Bytes() []byte {
	return r.buf
}

// Empty reports whether nothing has been appended to the record.
func (r *Record) Empty() bool {
	return len(r.buf) == 0
}

// CallerInfo contains information about the call site that created a
// record
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			buf: make([]byte, 0, 128), // covers typical single-line messages
		}
	},
}

// GetRecord retrieves a Record from the pool, stamped with the current
// time (coarse when the coarse clock is running).
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = Now()
	return r
}

// PutRecord returns a Record to the pool.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	if cap(r.buf) > maxPooledBufferSize {
		r.buf = make([]byte, 0, 128)
	}
	r.buf = r.buf[:0]
	r.Level = TraceLevel
	r.Caller = CallerInfo{}
	r.TraceID = ""
	r.SpanID = ""
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerFromPC resolves a program counter captured elsewhere, for
// bridges that already hold one.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
