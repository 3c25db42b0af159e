// Package core defines the shared types used across streamlog.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and the caller and clock helpers
// consulted when a record is created.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Producers get a Record with GetRecord; whichever
// component performs the sink fan-out for a record returns it with
// PutRecord once the last sink has consumed it. The pool pre-allocates
// the message buffer with capacity 128 bytes, which covers typical
// single-line messages without a slice growth, and does not retain
// buffers that grew past 4KiB.
package core
