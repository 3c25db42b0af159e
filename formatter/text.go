package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/jfelberg/streamlog/core"
)

// TextFormatter formats log records as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - pre-formatted string, colorized tag when a palette is set
	if f.Colors != nil {
		buf.WriteString(" [")
		buf.WriteString(f.Colors.pick(rec.Level).Sprint(rec.Level.String()))
		buf.WriteString("] ")
	} else if rec.Level >= 0 && int(rec.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Call site if enabled
	if f.Detail && rec.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		if rec.Caller.Function != "" {
			buf.WriteByte(' ')
			buf.WriteString(shortFunc(rec.Caller.Function))
		}
		buf.WriteString("] ")
	}

	// Message
	buf.Write(rec.Bytes())

	// Trace correlation
	if rec.TraceID != "" {
		buf.WriteString(" trace_id=")
		buf.WriteString(rec.TraceID)
	}
	if rec.SpanID != "" {
		buf.WriteString(" span_id=")
		buf.WriteString(rec.SpanID)
	}

	buf.WriteByte('\n')
}

// shortFunc trims the package path from a fully qualified function name
func shortFunc(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}
