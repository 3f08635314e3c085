package goMetrics

// Gauge is a named instantaneous-value front-end bound to one registry, with
// last-write-wins semantics per label set.
//
// Gauge instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Gauge struct {
	registry   *Registry
	name       string
	help       string
	labelNames []string
}

// Gauge returns a gauge handle for name, registering its definition on first
// use.
func (r *Registry) Gauge(name, help string, labelNames ...string) *Gauge {
	if r == nil {
		return nil
	}
	def := r.register(MetricDef{
		Name:       name,
		Kind:       KindGauge,
		Help:       help,
		LabelNames: append([]string(nil), labelNames...),
	})
	return &Gauge{
		registry:   r,
		name:       name,
		help:       def.Help,
		labelNames: def.LabelNames,
	}
}

// Set overwrites the gauge at the given label values.
func (g *Gauge) Set(labels map[string]string, value float64) {
	if g == nil || g.registry == nil {
		return
	}
	if !g.registry.allow(g.labelNames, labels) {
		return
	}
	g.registry.SetGauge(g.name, labels, value)
}

// Get reads the last value set at the given label values, or 0 when unset.
func (g *Gauge) Get(labels map[string]string) float64 {
	if g == nil {
		return 0
	}
	return g.registry.GaugeValue(g.name, labels)
}
