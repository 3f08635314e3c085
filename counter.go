package goMetrics

// Counter is a named monotonic metric front-end bound to one registry. It
// holds no mutable state of its own — every operation re-derives the
// canonical key from the handle's name and the call's label values — so
// concurrent handles for the same name and labels observe a single entry.
//
// Counter instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Counter struct {
	registry   *Registry
	name       string
	help       string
	labelNames []string
}

// Counter returns a counter handle for name, registering its definition on
// first use. Label values supplied per call must match labelNames exactly
// under ValidationStrict.
func (r *Registry) Counter(name, help string, labelNames ...string) *Counter {
	if r == nil {
		return nil
	}
	def := r.register(MetricDef{
		Name:       name,
		Kind:       KindCounter,
		Help:       help,
		LabelNames: append([]string(nil), labelNames...),
	})
	return &Counter{
		registry:   r,
		name:       name,
		help:       def.Help,
		labelNames: def.LabelNames,
	}
}

// Inc adds 1 to the counter at the given label values.
func (c *Counter) Inc(labels map[string]string) {
	c.Add(labels, 1)
}

// Add adds delta to the counter at the given label values. Negative deltas
// break the monotonicity contract and are the caller's responsibility.
func (c *Counter) Add(labels map[string]string, delta float64) {
	if c == nil || c.registry == nil {
		return
	}
	if !c.registry.allow(c.labelNames, labels) {
		return
	}
	c.registry.IncrementCounter(c.name, labels, delta)
}

// Get reads the current cumulative value at the given label values. An
// untouched counter reads 0.
func (c *Counter) Get(labels map[string]string) float64 {
	if c == nil {
		return 0
	}
	return c.registry.CounterValue(c.name, labels)
}
