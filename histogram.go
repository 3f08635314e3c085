package goMetrics

import "sort"

// Histogram is a named distribution front-end bound to one registry. The
// handle carries the bucket boundaries used for every observation; per the
// registry contract those boundaries freeze at the first observation of each
// canonical key. Histograms expose no Get — read them through
// Registry.Histograms or an exporter.
//
// Histogram instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Histogram struct {
	registry   *Registry
	name       string
	help       string
	labelNames []string
	buckets    []float64
}

// Histogram returns a histogram handle for name, registering its definition
// on first use. A nil buckets slice selects Config.DefaultBuckets at
// observation time.
func (r *Registry) Histogram(name, help string, buckets []float64, labelNames ...string) *Histogram {
	if r == nil {
		return nil
	}
	var bounds []float64
	if len(buckets) > 0 {
		bounds = append([]float64(nil), buckets...)
		sort.Float64s(bounds)
	}
	def := r.register(MetricDef{
		Name:       name,
		Kind:       KindHistogram,
		Help:       help,
		LabelNames: append([]string(nil), labelNames...),
		Buckets:    bounds,
	})
	return &Histogram{
		registry:   r,
		name:       name,
		help:       def.Help,
		labelNames: def.LabelNames,
		buckets:    def.Buckets,
	}
}

// Observe records value into the histogram at the given label values.
func (h *Histogram) Observe(labels map[string]string, value float64) {
	if h == nil || h.registry == nil {
		return
	}
	if !h.registry.allow(h.labelNames, labels) {
		return
	}
	h.registry.ObserveHistogram(h.name, labels, value, h.buckets)
}
