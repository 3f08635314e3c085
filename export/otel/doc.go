// Package otel bridges a goMetrics registry into the OpenTelemetry metric
// API. Each registered metric definition becomes an observable instrument;
// on every collection the exporter snapshots the registry and observes each
// entry with its label set mapped to attributes. Histograms are exposed as
// cumulative bucket gauges (with an "le" attribute) plus _sum and _count
// instruments, mirroring the registry's cumulative-bucket model.
//
// Definitions must exist before the exporter is constructed: metrics
// recorded through raw registry calls without a typed handle are not
// bridged.
//
// # What this package must NOT do
//
//   - Mutate registry state.
//   - Create instruments after construction (the OTel API fixes the
//     instrument set at registration time).
package otel
