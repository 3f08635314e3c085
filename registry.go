package goMetrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/goMetrics/internal/eventlog"
)

// Registry is the process-wide metric store: three maps keyed by canonical
// key (counters, gauges, histograms), a bounded event log, and the declared
// metric definitions. All state is guarded by one RWMutex; mutating
// operations take the write lock, snapshots and reads the read lock.
// Cross-call atomicity is not promised: Counters() followed by Gauges() may
// observe a partially advanced state relative to concurrent writers.
//
// Construct through [Builder.Build]; the zero value is not usable.
type Registry struct {
	mu         sync.RWMutex
	counters   map[string]*CounterEntry
	gauges     map[string]*GaugeEntry
	histograms map[string]*HistogramEntry
	defs       map[string]MetricDef
	events     *eventlog.Log

	dispatcher *dispatcher
	violations atomic.Uint64
	instanceID string
	cfg        Config
}

/*
====================================
INGESTION
====================================
*/

// IncrementCounter adds delta to the counter at the canonical key for name
// and labels, creating the entry on first use. Delta validity (zero or
// negative deltas break monotonicity) is the caller's responsibility and is
// not validated. The appended event carries the post-increment cumulative
// value.
func (r *Registry) IncrementCounter(name string, labels map[string]string, delta float64) {
	if r == nil {
		return
	}
	key := canonicalKey(name, labels)
	ts := time.Now().UnixMilli()

	r.mu.Lock()
	e, ok := r.counters[key]
	if !ok {
		e = &CounterEntry{Name: name, Labels: cloneLabels(labels)}
		r.counters[key] = e
	}
	e.Value += delta
	ev := Event{Name: name, Kind: string(KindCounter), Value: e.Value, Labels: e.Labels, TimestampMillis: ts}
	r.events.Append(ev)
	r.mu.Unlock()

	r.dispatcher.emit(ev)
}

// SetGauge unconditionally overwrites or creates the gauge at the canonical
// key. Last write wins; no stronger ordering is guaranteed.
func (r *Registry) SetGauge(name string, labels map[string]string, value float64) {
	if r == nil {
		return
	}
	key := canonicalKey(name, labels)
	ts := time.Now().UnixMilli()

	r.mu.Lock()
	e, ok := r.gauges[key]
	if !ok {
		e = &GaugeEntry{Name: name, Labels: cloneLabels(labels)}
		r.gauges[key] = e
	}
	e.Value = value
	ev := Event{Name: name, Kind: string(KindGauge), Value: value, Labels: e.Labels, TimestampMillis: ts}
	r.events.Append(ev)
	r.mu.Unlock()

	r.dispatcher.emit(ev)
}

// ObserveHistogram records value into the histogram at the canonical key.
// The bucket set is frozen at first observation: the supplied boundaries
// (or Config.DefaultBuckets when nil) initialize the entry, and later calls
// reuse the frozen set regardless of what they pass. Every frozen boundary
// >= value has its cumulative count incremented; Sum and Count advance
// exactly once per observation.
func (r *Registry) ObserveHistogram(name string, labels map[string]string, value float64, boundaries []float64) {
	if r == nil {
		return
	}
	key := canonicalKey(name, labels)
	ts := time.Now().UnixMilli()

	r.mu.Lock()
	e, ok := r.histograms[key]
	if !ok {
		bounds := boundaries
		if len(bounds) == 0 {
			bounds = r.cfg.DefaultBuckets
		}
		sorted := append([]float64(nil), bounds...)
		sort.Float64s(sorted)
		e = &HistogramEntry{
			Name:       name,
			Labels:     cloneLabels(labels),
			Boundaries: sorted,
			Buckets:    make(map[float64]uint64, len(sorted)),
		}
		r.histograms[key] = e
	}
	e.Sum += value
	e.Count++
	for _, upper := range e.Boundaries {
		if value <= upper {
			e.Buckets[upper]++
		}
	}
	ev := Event{Name: name, Kind: string(KindHistogram), Value: value, Labels: e.Labels, TimestampMillis: ts}
	r.events.Append(ev)
	r.mu.Unlock()

	r.dispatcher.emit(ev)
}

/*
====================================
READS & SNAPSHOTS
====================================
*/

// CounterValue returns the cumulative value at the canonical key, or 0 when
// the counter has never been incremented. Absence is not an error.
func (r *Registry) CounterValue(name string, labels map[string]string) float64 {
	if r == nil {
		return 0
	}
	key := canonicalKey(name, labels)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.counters[key]; ok {
		return e.Value
	}
	return 0
}

// GaugeValue returns the last value set at the canonical key, or 0 when the
// gauge has never been set.
func (r *Registry) GaugeValue(name string, labels map[string]string) float64 {
	if r == nil {
		return 0
	}
	key := canonicalKey(name, labels)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.gauges[key]; ok {
		return e.Value
	}
	return 0
}

// Counters returns a deep-copied snapshot of the counter store keyed by
// canonical key.
func (r *Registry) Counters() map[string]CounterEntry {
	if r == nil {
		return map[string]CounterEntry{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]CounterEntry, len(r.counters))
	for k, e := range r.counters {
		out[k] = CounterEntry{Name: e.Name, Labels: cloneLabels(e.Labels), Value: e.Value}
	}
	return out
}

// Gauges returns a deep-copied snapshot of the gauge store keyed by
// canonical key.
func (r *Registry) Gauges() map[string]GaugeEntry {
	if r == nil {
		return map[string]GaugeEntry{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]GaugeEntry, len(r.gauges))
	for k, e := range r.gauges {
		out[k] = GaugeEntry{Name: e.Name, Labels: cloneLabels(e.Labels), Value: e.Value}
	}
	return out
}

// Histograms returns a deep-copied snapshot of the histogram store keyed by
// canonical key.
func (r *Registry) Histograms() map[string]HistogramEntry {
	if r == nil {
		return map[string]HistogramEntry{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]HistogramEntry, len(r.histograms))
	for k, e := range r.histograms {
		buckets := make(map[float64]uint64, len(e.Buckets))
		for b, c := range e.Buckets {
			buckets[b] = c
		}
		out[k] = HistogramEntry{
			Name:       e.Name,
			Labels:     cloneLabels(e.Labels),
			Boundaries: append([]float64(nil), e.Boundaries...),
			Buckets:    buckets,
			Sum:        e.Sum,
			Count:      e.Count,
		}
	}
	return out
}

// ExportEvents returns all retained events with TimestampMillis >= since, in
// original append order. The result is a finite snapshot; a later call
// re-scans current state.
func (r *Registry) ExportEvents(since int64) []Event {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events.Since(since)
}

// Summary reports current store cardinalities, retained event count, and the
// dispatcher/validation counters. Cheap enough for health checks.
func (r *Registry) Summary() Summary {
	if r == nil {
		return Summary{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Summary{
		Counters:         len(r.counters),
		Gauges:           len(r.gauges),
		Histograms:       len(r.histograms),
		TotalEvents:      r.events.Len(),
		EventsDropped:    r.dispatcher.droppedCount(),
		SchemaViolations: r.violations.Load(),
		InstanceID:       r.instanceID,
	}
}

// EventsDropped returns the number of events discarded by the asynchronous
// dispatcher due to backpressure. Always 0 when dispatch is disabled.
func (r *Registry) EventsDropped() uint64 {
	if r == nil {
		return 0
	}
	return r.dispatcher.droppedCount()
}

/*
====================================
LIFECYCLE
====================================
*/

// Clear empties all three stores and the event log and resets the violation
// counter. Metric definitions survive: existing handles remain bound and
// previously-set keys simply read as zero afterwards. Intended for test
// isolation; concurrent ingestion during Clear observes either the old or
// the new state of a given store, never a torn entry.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.counters = make(map[string]*CounterEntry)
	r.gauges = make(map[string]*GaugeEntry)
	r.histograms = make(map[string]*HistogramEntry)
	r.events.Reset()
	r.mu.Unlock()
	r.violations.Store(0)
}

// Close stops the asynchronous event dispatcher, draining buffered events
// into the sink. Safe to call multiple times and on a registry without
// dispatch enabled. Ingestion after Close still updates the stores; only
// sink forwarding stops.
func (r *Registry) Close() {
	if r == nil {
		return
	}
	r.dispatcher.close()
}

/*
====================================
DEFINITIONS
====================================
*/

// register stores def if its name is unseen and returns the effective
// definition (first registration wins).
func (r *Registry) register(def MetricDef) MetricDef {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.defs[def.Name]; ok {
		return existing
	}
	r.defs[def.Name] = def
	return def
}

// Defs returns the registered metric definitions sorted by name. Exporters
// use this to emit help text and to pre-create instruments.
func (r *Registry) Defs() []MetricDef {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]MetricDef, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, MetricDef{
			Name:       def.Name,
			Kind:       def.Kind,
			Help:       def.Help,
			LabelNames: append([]string(nil), def.LabelNames...),
			Buckets:    append([]float64(nil), def.Buckets...),
		})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// allow applies the configured validation mode to a handle call. Strict mode
// drops non-conforming samples and counts the violation.
func (r *Registry) allow(schema []string, labels map[string]string) bool {
	if r.cfg.Validation == ValidationLenient {
		return true
	}
	if matchesSchema(schema, labels) {
		return true
	}
	r.violations.Add(1)
	return false
}
