// Package prometheus renders goMetrics registry state in the Prometheus
// text exposition format, including # HELP and # TYPE metadata for every
// registered definition and full histogram exposition
// (_bucket/_sum/_count with cumulative le buckets).
//
// Unlike Registry.ExportText — the minimal counters-and-gauges line format
// with a uniform capture timestamp — this package emits standard exposition
// without per-sample timestamps, suitable for scraping via [Exporter.Handler].
//
// # What this package must NOT do
//
//   - Mutate registry state (it only reads snapshots).
//   - Escape label values: output stays byte-consistent with the registry's
//     canonical keys, a documented limitation of the core.
package prometheus
