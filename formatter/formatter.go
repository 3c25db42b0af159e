package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/jfelberg/streamlog/core"
)

// DefaultTimestampFormat renders wall-clock time with microsecond
// precision, matching the resolution records are stamped with.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000000"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// Detail enables call site information (file:line and function)
	// in the output
	Detail bool
	// TimestampFormat specifies the time format (empty for the
	// package default)
	TimestampFormat string
	// Colors selects the level tag palette; nil disables color
	Colors *LevelColors
}

// LevelColors maps each level to the color its tag is rendered with.
type LevelColors struct {
	Trace *color.Color
	Debug *color.Color
	Info  *color.Color
	Warn  *color.Color
	Error *color.Color
}

// DefaultColors returns the standard level palette. The colors are
// force-enabled: whether the target supports color is the sink's
// decision, made before the palette is installed.
func DefaultColors() *LevelColors {
	c := &LevelColors{
		Trace: color.New(color.FgHiBlack),
		Debug: color.New(color.FgMagenta),
		Info:  color.New(color.FgGreen),
		Warn:  color.New(color.FgYellow),
		Error: color.New(color.FgRed, color.Bold),
	}
	for _, cc := range []*color.Color{c.Trace, c.Debug, c.Info, c.Warn, c.Error} {
		cc.EnableColor()
	}
	return c
}

func (c *LevelColors) pick(l core.Level) *color.Color {
	switch {
	case l >= core.ErrorLevel:
		return c.Error
	case l >= core.WarnLevel:
		return c.Warn
	case l >= core.InfoLevel:
		return c.Info
	case l >= core.DebugLevel:
		return c.Debug
	default:
		return c.Trace
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
