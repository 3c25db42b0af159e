// Command example walks through the streamlog feature set: sink
// registration, incremental record building, trace stamping, deferred
// delivery, runtime level changes, and the log/slog bridge.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/jfelberg/streamlog/core"
	"github.com/jfelberg/streamlog/formatter"
	"github.com/jfelberg/streamlog/logger"
	"github.com/jfelberg/streamlog/sink"
)

func main() {
	// Millisecond-grade timestamps are plenty here and cost far less
	// under load.
	core.StartCoarseClock()

	// 1. Register destinations: a colored console sink and a JSON file
	// sink. Registration order is delivery order.
	logger.Add(sink.NewConsole(sink.ConsoleConfig{}))

	path := filepath.Join(os.TempDir(), "streamlog-example.log")
	file, err := sink.NewFile(sink.FileConfig{
		Path:      path,
		Formatter: formatter.NewJSONFormatter(formatter.Config{Detail: true}),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "file sink degraded to dropping: %v\n", err)
	}
	logger.Add(file)

	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	// 2. One-shot helpers
	logger.Infof("service starting pid=%d", os.Getpid())
	logger.Debugf("config loaded from %s", "/etc/app.conf")

	// 3. Building one record across statements before the handoff
	c := logger.Info().Print("copied 3 objects:")
	for _, obj := range []string{"alpha", "beta", "gamma"} {
		c.Printf(" %s", obj)
	}
	c.End()

	// A half-built record can be abandoned; Clear suppresses the
	// handoff entirely.
	logger.Debug().Print("diagnostics nobody asked for").Clear().End()

	// 4. Stamping records with trace context
	ctx := demoSpanContext()
	logger.Warn().Ctx(ctx).Print("upstream latency above threshold").End()

	// 5. Deferred delivery: emission sites only enqueue, a worker owns
	// the sink I/O.
	logger.SetWriter(logger.NewAsyncWriter(logger.Instance()))

	var wg sync.WaitGroup
	for worker := 0; worker < 3; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for job := 0; job < 4; job++ {
				logger.Infof("worker %d processed job %d", worker, job)
			}
		}(worker)
	}
	wg.Wait()

	// Swapping the writer out drains it first
	logger.SetWriter(nil)

	// 6. Runtime level changes apply to the currently registered sinks
	logger.SetLevel(logger.WarnLevel)
	logger.Infof("suppressed: below the new threshold")
	logger.Warnf("still visible")
	logger.SetLevel(logger.TraceLevel)

	// 7. Serving the standard library's structured logger
	sl := slog.New(logger.NewSlogHandler(nil))
	sl.Info("request served", "status", 200, "path", "/healthz")

	// 8. Per-sink delivery counters
	if console, ok := logger.Get(sink.DefaultConsoleName).(*sink.Console); ok {
		snap := console.Stats()
		fmt.Printf("console: written=%d dropped=%d errors=%d\n",
			snap.WrittenTotal, snap.DroppedTotal, snap.ErrorTotal)
	}
	fmt.Printf("file log at %s\n", path)
}

// demoSpanContext builds a context carrying a fixed span so the trace
// stamping is visible without a running collector.
func demoSpanContext() context.Context {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}
