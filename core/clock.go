package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseClockOnce    sync.Once
	coarseClockRunning atomic.Bool
	coarseNow          unsafe.Pointer // *time.Time
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. Once it is running, Now returns the cached
// value, trading timestamp precision for a cheaper record hot path.
// It is safe to call multiple times; the goroutine is started exactly
// once. The goroutine runs for the lifetime of the process; this is
// intentional because logging typically spans the entire application
// lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		coarseClockRunning.Store(true)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// Now returns the cached coarse time when the coarse clock is running
// and time.Now() otherwise. Record timestamps come from here.
func Now() time.Time {
	if coarseClockRunning.Load() {
		return *(*time.Time)(atomic.LoadPointer(&coarseNow))
	}
	return time.Now()
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}
