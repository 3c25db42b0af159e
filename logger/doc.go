// Package logger is the public API of streamlog. Most users only need
// to import this package.
//
// A Logger fans records out to named sinks through one active Writer.
// The registry and the writer slot hold immutable snapshots behind
// atomics, so emission never takes a lock in the dispatcher itself;
// administrative calls (Add, Remove, SetWriter, SetLevel) copy and
// swap, and are meant to run from a single goroutine.
//
// Records are built through captures:
//
//	logger.Add(sink.NewConsole(sink.ConsoleConfig{}))
//	logger.Info().Printf("listening on %s", addr).End()
//	logger.Errorf("dial %s: %v", addr, err)
//
// A capture stamps level, time, and call site at creation, buffers
// whatever the caller appends, and hands the finished record over
// exactly once: on Flush, or on the End that releases the last
// reference. Clear discards it instead. An empty capture emits
// nothing.
//
// Delivery runs through the active writer. The default InlineWriter
// fans out on the calling goroutine; swapping in an AsyncWriter moves
// delivery onto one background worker feeding off an unbounded queue,
// which Close drains completely before stopping:
//
//	logger.SetWriter(logger.NewAsyncWriter(logger.Instance()))
//	defer logger.Close()
//
// Each sink filters by its own minimum level at delivery time, and a
// failing or panicking sink never disturbs the remaining sinks or the
// logging caller.
package logger
