package logger

import (
	"sync"

	"github.com/jfelberg/streamlog/core"
)

// AsyncWriter moves the sink fan-out off the logging goroutines onto
// a single background worker.
//
// Producers append to an unbounded pending queue under a mutex and
// nudge the worker through a coalescing wake channel; the worker
// swaps the whole queue out and delivers it in order, one lock
// round-trip per burst rather than per record. Unbounded is
// deliberate: a producer never blocks beyond the append, and
// sustained overload costs memory instead of lost records or stalled
// callers.
//
// Records from one producer goroutine reach the sinks in the order
// that producer wrote them. Records from different producers are
// interleaved in whatever order the queue mutex serialized.
type AsyncWriter struct {
	l *Logger

	mu      sync.Mutex
	pending []*core.Record

	wake chan struct{}
	quit chan struct{}
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewAsyncWriter creates the deferred delivery strategy for l and
// starts its worker goroutine.
func NewAsyncWriter(l *Logger) *AsyncWriter {
	w := &AsyncWriter{
		l:    l,
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Write enqueues rec and wakes the worker. It never blocks beyond the
// queue mutex.
func (w *AsyncWriter) Write(rec *core.Record) {
	w.mu.Lock()
	w.pending = append(w.pending, rec)
	w.mu.Unlock()

	// Coalesced wake: one buffered signal suffices because the worker
	// drains the whole queue per pass
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of records accepted but not yet fanned
// out.
func (w *AsyncWriter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// run drains the queue on every wake, then drains once more on quit
// so that nothing accepted before Close is lost.
func (w *AsyncWriter) run() {
	defer w.wg.Done()
	defer func() {
		// A panic here means the queue machinery itself is broken.
		// Push out what is left, then let it crash: a silently dead
		// pipeline would be worse.
		if r := recover(); r != nil {
			w.flush()
			panic(r)
		}
	}()

	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

// flush swaps out the whole pending queue and fans it out in order
func (w *AsyncWriter) flush() {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, rec := range batch {
		w.l.writeSinks(rec)
	}
}

// Close stops the worker after a final drain: every record accepted
// before Close began reaches the sinks. Records written concurrently
// with Close may or may not be delivered. Close is idempotent and
// safe to call from multiple goroutines; every caller blocks until
// the worker has exited.
func (w *AsyncWriter) Close() error {
	w.closeOnce.Do(func() {
		close(w.quit)
	})
	w.wg.Wait()
	return nil
}
