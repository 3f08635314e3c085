package otel

import (
	"context"
	"errors"
	"fmt"
	"sort"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/export/internaldefs"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	Defs() []goMetrics.MetricDef
	Counters() map[string]goMetrics.CounterEntry
	Gauges() map[string]goMetrics.GaugeEntry
	Histograms() map[string]goMetrics.HistogramEntry
	EventsDropped() uint64
}

type observedCounter struct {
	name       string
	instrument metric.Float64ObservableCounter
}

type observedGauge struct {
	name       string
	instrument metric.Float64ObservableGauge
}

type observedHistogram struct {
	name   string
	bucket metric.Int64ObservableGauge
	sum    metric.Float64ObservableGauge
	count  metric.Int64ObservableCounter
}

// Exporter registers observable instruments for every metric definition in a
// registry and feeds them from registry snapshots on collection.
type Exporter struct {
	source        metricsSource
	registration  metric.Registration
	counters      []observedCounter
	gauges        []observedGauge
	histograms    []observedHistogram
	eventsDropped metric.Int64ObservableCounter
}

// NewExporter bridges the given registry through meter.
func NewExporter(meter metric.Meter, registry *goMetrics.Registry) (*Exporter, error) {
	return NewExporterFromSource(meter, registry)
}

// NewExporterFromSource bridges a custom metrics source through meter.
func NewExporterFromSource(meter metric.Meter, source metricsSource) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	defs := source.Defs()
	exporter := &Exporter{source: source}

	observables := make([]metric.Observable, 0, 3*len(defs)+1)

	for _, def := range defs {
		switch def.Kind {
		case goMetrics.KindCounter:
			ins, err := meter.Float64ObservableCounter(def.Name, metric.WithDescription(def.Help))
			if err != nil {
				return nil, fmt.Errorf("create observable counter %s: %w", def.Name, err)
			}
			exporter.counters = append(exporter.counters, observedCounter{name: def.Name, instrument: ins})
			observables = append(observables, ins)
		case goMetrics.KindGauge:
			ins, err := meter.Float64ObservableGauge(def.Name, metric.WithDescription(def.Help))
			if err != nil {
				return nil, fmt.Errorf("create observable gauge %s: %w", def.Name, err)
			}
			exporter.gauges = append(exporter.gauges, observedGauge{name: def.Name, instrument: ins})
			observables = append(observables, ins)
		case goMetrics.KindHistogram:
			bucket, err := meter.Int64ObservableGauge(def.Name+"_bucket", metric.WithDescription("Cumulative histogram bucket count."))
			if err != nil {
				return nil, fmt.Errorf("create histogram bucket gauge %s: %w", def.Name, err)
			}
			sum, err := meter.Float64ObservableGauge(def.Name+"_sum", metric.WithDescription("Histogram running sum."))
			if err != nil {
				return nil, fmt.Errorf("create histogram sum gauge %s: %w", def.Name, err)
			}
			count, err := meter.Int64ObservableCounter(def.Name+"_count", metric.WithDescription("Histogram total sample count."))
			if err != nil {
				return nil, fmt.Errorf("create histogram count counter %s: %w", def.Name, err)
			}
			exporter.histograms = append(exporter.histograms, observedHistogram{name: def.Name, bucket: bucket, sum: sum, count: count})
			observables = append(observables, bucket, sum, count)
		}
	}

	eventsDropped, err := meter.Int64ObservableCounter(
		"gometrics_events_dropped_total",
		metric.WithDescription("Events dropped by the async dispatcher due to backpressure."),
	)
	if err != nil {
		return nil, fmt.Errorf("create events dropped counter: %w", err)
	}
	exporter.eventsDropped = eventsDropped
	observables = append(observables, eventsDropped)

	registration, err := meter.RegisterCallback(exporter.collect, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

func (e *Exporter) collect(_ context.Context, observer metric.Observer) error {
	counters := e.source.Counters()
	gauges := e.source.Gauges()
	histograms := e.source.Histograms()

	for _, c := range e.counters {
		for _, entry := range counters {
			if entry.Name == c.name {
				observer.ObserveFloat64(c.instrument, entry.Value, metric.WithAttributes(attributes(entry.Labels)...))
			}
		}
	}
	for _, g := range e.gauges {
		for _, entry := range gauges {
			if entry.Name == g.name {
				observer.ObserveFloat64(g.instrument, entry.Value, metric.WithAttributes(attributes(entry.Labels)...))
			}
		}
	}
	for _, h := range e.histograms {
		for _, entry := range histograms {
			if entry.Name != h.name {
				continue
			}
			attrs := attributes(entry.Labels)
			for _, upper := range entry.Boundaries {
				le := append(append([]attribute.KeyValue(nil), attrs...), attribute.String("le", internaldefs.FormatValue(upper)))
				observer.ObserveInt64(h.bucket, int64(entry.Buckets[upper]), metric.WithAttributes(le...))
			}
			inf := append(append([]attribute.KeyValue(nil), attrs...), attribute.String("le", "+Inf"))
			observer.ObserveInt64(h.bucket, int64(entry.Count), metric.WithAttributes(inf...))
			observer.ObserveFloat64(h.sum, entry.Sum, metric.WithAttributes(attrs...))
			observer.ObserveInt64(h.count, int64(entry.Count), metric.WithAttributes(attrs...))
		}
	}
	observer.ObserveInt64(e.eventsDropped, int64(e.source.EventsDropped()))
	return nil
}

// Close unregisters the collection callback.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}

func attributes(labels map[string]string) []attribute.KeyValue {
	if len(labels) == 0 {
		return nil
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, attribute.String(k, labels[k]))
	}
	return out
}
