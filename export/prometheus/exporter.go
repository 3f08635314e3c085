package prometheus

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/export/internaldefs"
)

type metricsSource interface {
	Defs() []goMetrics.MetricDef
	Counters() map[string]goMetrics.CounterEntry
	Gauges() map[string]goMetrics.GaugeEntry
	Histograms() map[string]goMetrics.HistogramEntry
	EventsDropped() uint64
}

// Exporter renders registry state in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an exporter reading from the given [goMetrics.Registry].
func NewExporter(registry *goMetrics.Registry) *Exporter {
	return &Exporter{source: registry}
}

// NewExporterFromSource creates an exporter from a custom metrics source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler that serves the current exposition.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render writes the current registry state as exposition text. Families with
// a registered definition carry # HELP and # TYPE metadata; entries recorded
// through raw registry calls without a definition are appended as bare
// samples. Ordering is deterministic: definitions by name, samples by
// canonical key.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	counters := e.source.Counters()
	gauges := e.source.Gauges()
	histograms := e.source.Histograms()

	var b strings.Builder
	b.Grow(8192)

	defined := make(map[string]bool)
	for _, def := range e.source.Defs() {
		defined[def.Name] = true
		switch def.Kind {
		case goMetrics.KindCounter:
			writeHeader(&b, def.Name, def.Help, "counter")
			for _, key := range sortedKeys(counters) {
				if entry := counters[key]; entry.Name == def.Name {
					writeSample(&b, entry.Name, internaldefs.LabelPairs(entry.Labels), internaldefs.FormatValue(entry.Value))
				}
			}
		case goMetrics.KindGauge:
			writeHeader(&b, def.Name, def.Help, "gauge")
			for _, key := range sortedKeys(gauges) {
				if entry := gauges[key]; entry.Name == def.Name {
					writeSample(&b, entry.Name, internaldefs.LabelPairs(entry.Labels), internaldefs.FormatValue(entry.Value))
				}
			}
		case goMetrics.KindHistogram:
			writeHeader(&b, def.Name, def.Help, "histogram")
			for _, key := range sortedKeys(histograms) {
				if entry := histograms[key]; entry.Name == def.Name {
					writeHistogram(&b, entry)
				}
			}
		}
	}

	for _, key := range sortedKeys(counters) {
		if entry := counters[key]; !defined[entry.Name] {
			writeSample(&b, entry.Name, internaldefs.LabelPairs(entry.Labels), internaldefs.FormatValue(entry.Value))
		}
	}
	for _, key := range sortedKeys(gauges) {
		if entry := gauges[key]; !defined[entry.Name] {
			writeSample(&b, entry.Name, internaldefs.LabelPairs(entry.Labels), internaldefs.FormatValue(entry.Value))
		}
	}
	for _, key := range sortedKeys(histograms) {
		if entry := histograms[key]; !defined[entry.Name] {
			writeHistogram(&b, entry)
		}
	}

	writeHeader(&b, "gometrics_events_dropped_total", "Events dropped by the async dispatcher due to backpressure.", "counter")
	writeSample(&b, "gometrics_events_dropped_total", "", strconv.FormatUint(e.source.EventsDropped(), 10))

	return b.String()
}

func writeHeader(b *strings.Builder, name, help, kind string) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(internaldefs.EscapeHelp(help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(kind)
	b.WriteByte('\n')
}

func writeSample(b *strings.Builder, name, pairs, value string) {
	b.WriteString(name)
	if pairs != "" {
		b.WriteByte('{')
		b.WriteString(pairs)
		b.WriteByte('}')
	}
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

func writeHistogram(b *strings.Builder, entry goMetrics.HistogramEntry) {
	pairs := internaldefs.LabelPairs(entry.Labels)
	for _, upper := range entry.Boundaries {
		writeSample(b, entry.Name+"_bucket", joinPairs(pairs, `le="`+internaldefs.FormatValue(upper)+`"`), strconv.FormatUint(entry.Buckets[upper], 10))
	}
	writeSample(b, entry.Name+"_bucket", joinPairs(pairs, `le="+Inf"`), strconv.FormatUint(entry.Count, 10))
	writeSample(b, entry.Name+"_sum", pairs, internaldefs.FormatValue(entry.Sum))
	writeSample(b, entry.Name+"_count", pairs, strconv.FormatUint(entry.Count, 10))
}

func joinPairs(pairs, le string) string {
	if pairs == "" {
		return le
	}
	return pairs + "," + le
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
