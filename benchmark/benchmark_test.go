package benchmark

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/formatter"
	"github.com/jfelberg/streamlog/logger"
	"github.com/jfelberg/streamlog/sink"
)

// discardWriter is a no-op writer for benchmarking
type discardWriter struct{}

func (w discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// newDiscardLogger returns a detached logger with one console sink
// writing through f to a discarding writer.
func newDiscardLogger(f formatter.Formatter) *logger.Logger {
	l := logger.New()
	l.Add(sink.NewConsole(sink.ConsoleConfig{
		Writer:    discardWriter{},
		Formatter: f,
	}))
	return l
}

// Benchmark the one-shot helper with no formatting verbs
func BenchmarkInfofStatic(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		l.Infof("test message")
	}
}

// Benchmark the one-shot helper with formatting verbs
func BenchmarkInfofFormatted(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		l.Infof("test message %d %s", i, "value")
	}
}

// Benchmark capture chains of increasing length
func BenchmarkCaptureAppends(b *testing.B) {
	counts := []int{1, 3, 5, 10}

	for _, count := range counts {
		b.Run(fmt.Sprintf("%dAppends", count), func(b *testing.B) {
			l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
			defer l.Close()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				c := l.Info().Print("test message")
				for j := 0; j < count; j++ {
					c.Printf(" part%d=%d", j, j)
				}
				c.End()
			}
		})
	}
}

// Benchmark a record every sink rejects. The record is still built,
// stamped, and queued; only the delivery is skipped.
func BenchmarkDisabledLevel(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	defer l.Close()
	l.SetLevel(core.ErrorLevel)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		l.Debugf("should be skipped %d", i)
	}
}

// Benchmark Text vs JSON formatter, with and without call site detail
func BenchmarkFormatters(b *testing.B) {
	tests := []struct {
		name      string
		formatter formatter.Formatter
	}{
		{"Text", formatter.NewTextFormatter(formatter.Config{})},
		{"JSON", formatter.NewJSONFormatter(formatter.Config{})},
		{"TextWithDetail", formatter.NewTextFormatter(formatter.Config{Detail: true})},
		{"JSONWithDetail", formatter.NewJSONFormatter(formatter.Config{Detail: true})},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			l := newDiscardLogger(tt.formatter)
			defer l.Close()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Infof("test message key1=%s key2=%d key3=%.2f", "value1", 42, 3.14)
			}
		})
	}
}

// Benchmark the inline writer against the deferred writer
func BenchmarkInlineVsAsync(b *testing.B) {
	tests := []struct {
		name  string
		async bool
	}{
		{"Inline", false},
		{"Async", true},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
			if tt.async {
				l.SetWriter(logger.NewAsyncWriter(l))
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Infof("test message key1=%s key2=%d", "value1", i)
			}

			b.StopTimer()
			l.Close()
		})
	}
}

// Benchmark fan-out to growing numbers of sinks
func BenchmarkSinkCount(b *testing.B) {
	counts := []int{2, 3, 5, 10}

	for _, count := range counts {
		b.Run(fmt.Sprintf("%dSinks", count), func(b *testing.B) {
			l := logger.New()
			for i := 0; i < count; i++ {
				l.Add(sink.NewConsole(sink.ConsoleConfig{
					Name:      fmt.Sprintf("console-%d", i),
					Writer:    discardWriter{},
					Formatter: formatter.NewTextFormatter(formatter.Config{}),
				}))
			}
			defer l.Close()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Infof("test message %d", i)
			}
		})
	}
}

// Benchmark writing through a real file sink behind the deferred
// writer.
func BenchmarkFileSink(b *testing.B) {
	f, err := sink.NewFile(sink.FileConfig{
		Path:      filepath.Join(b.TempDir(), "bench.log"),
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	if err != nil {
		b.Fatal(err)
	}

	l := logger.New()
	l.Add(f)
	l.SetWriter(logger.NewAsyncWriter(l))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		l.Infof("test message key1=%s key2=%d", "value1", i)
	}

	b.StopTimer()
	l.Close()
}

// Benchmark large message bodies
func BenchmarkLargeMessages(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"Small_50B", 50},
		{"Medium_500B", 500},
		{"Large_5KB", 5000},
		{"VeryLarge_50KB", 50000},
	}

	for _, sz := range sizes {
		b.Run(sz.name, func(b *testing.B) {
			l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
			defer l.Close()

			message := string(make([]byte, sz.size))

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Info().Print(message).End()
			}
		})
	}
}

// Benchmark record pool recycling
func BenchmarkRecordPool(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		rec := core.GetRecord()
		rec.Level = core.InfoLevel
		rec.AppendString("test message")
		core.PutRecord(rec)
	}
}

// Benchmark Format against FormatTo for the text formatter
func BenchmarkFormatVsFormatTo(b *testing.B) {
	rec := core.GetRecord()
	rec.Level = core.InfoLevel
	rec.AppendString("test message key1=value1 key2=42")
	defer core.PutRecord(rec)

	b.Run("Format", func(b *testing.B) {
		f := formatter.NewTextFormatter(formatter.Config{})
		w := discardWriter{}

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			data, _ := f.Format(rec)
			w.Write(data)
		}
	})

	b.Run("FormatTo", func(b *testing.B) {
		f := formatter.NewTextFormatter(formatter.Config{})
		w := discardWriter{}

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			f.FormatTo(rec, w)
		}
	})
}

// Benchmark every level in sequence through the deferred writer
func BenchmarkAllLevelsSequence(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	l.SetLevel(core.TraceLevel)
	l.SetWriter(logger.NewAsyncWriter(l))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		l.Debugf("debug message")
		l.Infof("info message")
		l.Warnf("warn message")
		l.Errorf("error message")
	}

	b.StopTimer()
	l.Close()
}

func BenchmarkStreamlog_Parallel_Text(b *testing.B) {
	l := logger.New()
	l.Add(sink.NewConsole(sink.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	}))
	defer l.Close()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Infof("parallel log")
		}
	})
}

func BenchmarkStreamlog_Parallel_JSON(b *testing.B) {
	l := logger.New()
	l.Add(sink.NewConsole(sink.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	}))
	defer l.Close()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Infof("parallel log")
		}
	})
}

func BenchmarkStreamlog_Parallel_NoFormatting_NoopSink(b *testing.B) {
	l := logger.New()
	l.Add(newNoopSink())
	defer l.Close()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Infof("parallel log")
		}
	})
}

func BenchmarkStreamlog_Parallel_Async(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	l.SetWriter(logger.NewAsyncWriter(l))

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Infof("parallel log key=%s count=%d", "value", 42)
		}
	})

	b.StopTimer()
	l.Close()
}

// Benchmark the process-wide coarse clock against time.Now. Starting
// the coarse clock is irreversible, so the standard run comes first
// and the clock stays on for the rest of the process.
func BenchmarkCoarseClock(b *testing.B) {
	b.Run("Standard", func(b *testing.B) {
		l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
		defer l.Close()

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			l.Infof("test message")
		}
	})

	b.Run("CoarseClock", func(b *testing.B) {
		core.StartCoarseClock()
		l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
		defer l.Close()

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			l.Infof("test message")
		}
	})
}

// Benchmark appending raw bytes through the io.Writer seam of a
// capture.
func BenchmarkCaptureAsWriter(b *testing.B) {
	l := newDiscardLogger(formatter.NewTextFormatter(formatter.Config{}))
	defer l.Close()

	payload := []byte("raw payload bytes")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c := l.Info()
		c.Write(payload)
		c.End()
	}
}
