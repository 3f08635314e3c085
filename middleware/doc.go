// Package middleware provides HTTP request instrumentation backed by a
// goMetrics registry. Wrap handlers with [Instrument] to record request
// counts by method, route, and status, plus request latency histograms.
package middleware
