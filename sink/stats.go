package sink

import "sync/atomic"

// Stats tracks sink delivery statistics
type Stats struct {
	// WrittenTotal counts records delivered to the destination
	WrittenTotal uint64
	// DroppedTotal counts records discarded without delivery
	DroppedTotal uint64
	// ErrorTotal counts failed delivery attempts
	ErrorTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	atomic.AddUint64(&s.WrittenTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementError atomically increments the error counter
func (s *Stats) IncrementError() {
	atomic.AddUint64(&s.ErrorTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.ErrorTotal, 0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	WrittenTotal uint64
	DroppedTotal uint64
	ErrorTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WrittenTotal: atomic.LoadUint64(&s.WrittenTotal),
		DroppedTotal: atomic.LoadUint64(&s.DroppedTotal),
		ErrorTotal:   atomic.LoadUint64(&s.ErrorTotal),
	}
}
