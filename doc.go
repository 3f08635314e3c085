// Package goMetrics provides a label-aware, in-process metrics registry with
// counters, gauges, cumulative-bucket histograms, a bounded event log, and a
// line-oriented text exposition.
//
// A [Registry] is built once per process through [Builder.Build] and passed to
// the code that records into it. Typed handles ([Counter], [Gauge],
// [Histogram]) are created from the registry at startup with a fixed
// label-name schema and are safe to share across goroutines: every operation
// round-trips through the registry under a single lock, so concurrent handles
// for the same name and labels observe one consistent entry.
//
// # Architecture boundaries
//
// goMetrics is the public surface. It exposes [Registry], [Builder], [Config],
// the typed handles, [Event], and the event sinks. The bounded event log lives
// under internal/ and is never exported. Export formats (Prometheus text
// exposition, OpenTelemetry bridging) live in export/ and read registry
// snapshots; periodic collection from external stores lives in collector/.
//
// # What this package must NOT do
//
//   - Perform I/O or network calls inside registry operations.
//   - Evict counter, gauge, or histogram entries (only the event log is
//     bounded; label cardinality is the caller's responsibility).
//   - Fail an ingestion call: increments, sets, and observations are total
//     functions, and absent keys read as zero.
//
// # Performance contract
//
// Ingestion is the hot path. An increment is one key render, one map lookup,
// and one event append under the registry mutex; no allocation is required
// beyond first-touch entry creation. Export and snapshot calls copy state and
// may allocate freely.
package goMetrics
