package goMetrics

import "github.com/MrEthical07/goMetrics/internal/eventlog"

// Kind identifies the metric family a definition or event belongs to.
//
// Kind instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Kind string

const (
	// KindCounter marks a monotonically accumulated value.
	KindCounter Kind = "counter"
	// KindGauge marks an instantaneous value that can move up or down.
	KindGauge Kind = "gauge"
	// KindHistogram marks a cumulative-bucket distribution summary.
	KindHistogram Kind = "histogram"
)

// Event is one point-in-time observation retained by the registry's event log.
// For counters the Value field carries the post-increment cumulative value,
// not the delta.
type Event = eventlog.Event

// CounterEntry is the current cumulative state of one counter key.
//
// CounterEntry instances returned from snapshots are copies; mutating them has no effect on the registry.
type CounterEntry struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// GaugeEntry is the current state of one gauge key (last write wins).
//
// GaugeEntry instances returned from snapshots are copies; mutating them has no effect on the registry.
type GaugeEntry struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// HistogramEntry is the current state of one histogram key. Buckets holds
// cumulative counts keyed by upper boundary: each bucket counts every
// observation less than or equal to its boundary. Boundaries is the bucket
// set frozen at first observation, ascending.
//
// HistogramEntry instances returned from snapshots are copies; mutating them has no effect on the registry.
type HistogramEntry struct {
	Name       string
	Labels     map[string]string
	Boundaries []float64
	Buckets    map[float64]uint64
	Sum        float64
	Count      uint64
}

// MetricDef is the declared schema of a typed handle: name, help text, label
// names, and (for histograms) bucket boundaries. The first registration of a
// name wins; later registrations of the same name reuse the stored definition.
type MetricDef struct {
	Name       string
	Kind       Kind
	Help       string
	LabelNames []string
	Buckets    []float64
}

// Summary is a cheap cardinality and size report for health checks.
type Summary struct {
	Counters         int
	Gauges           int
	Histograms       int
	TotalEvents      int
	EventsDropped    uint64
	SchemaViolations uint64
	InstanceID       string
}
