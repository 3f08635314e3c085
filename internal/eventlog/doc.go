// Package eventlog provides the bounded, append-only observation log owned
// by the goMetrics registry.
//
// # Retention semantics
//
// Appends are unconditional. When the log length exceeds the high-water mark
// the oldest entries are dropped down to the low-water mark, so trimming
// happens in bursts instead of on every insert (high/low-watermark trim, not
// a strict ring buffer).
//
// # What this package must NOT do
//
//   - Synchronize access: the owning registry serializes all calls.
//   - Mutate stored events after append.
//   - Be imported outside the goMetrics module.
package eventlog
