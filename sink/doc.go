// Package sink provides the delivery endpoints records are fanned
// out to.
//
// A Sink couples one destination with a name, used for registry
// lookup and replacement, and a minimum level, checked by the
// dispatcher at delivery time. Two implementations are provided:
// Console writes human-readable lines to a terminal or any io.Writer,
// colorized when the target supports it; File appends to a single log
// file whose default location derives from the running executable's
// path.
//
// Write errors are advisory. The dispatcher counts them and carries
// on with the remaining sinks, so a misbehaving destination never
// reaches the logging caller. A File sink whose file could not be
// opened drops records silently until SetPath succeeds. Per-sink
// Stats expose written, dropped, and error counts.
package sink
