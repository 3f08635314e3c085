package goMetrics

import (
	"fmt"

	"github.com/MrEthical07/goMetrics/internal/eventlog"
	"github.com/google/uuid"
)

// Builder assembles a Registry. Construction is allocation-only; no
// goroutine starts until Build, and then only when event dispatch is
// enabled.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	sink   EventSink
	built  bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration. The config is cloned; later
// mutation of cfg by the caller does not affect the builder.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithEventLogBounds overrides the event log high/low watermarks.
func (b *Builder) WithEventLogBounds(high, low int) *Builder {
	b.config.EventLog.HighWaterMark = high
	b.config.EventLog.LowWaterMark = low
	return b
}

// WithDefaultBuckets overrides the bucket boundaries used by histograms
// constructed without an explicit set.
func (b *Builder) WithDefaultBuckets(bounds ...float64) *Builder {
	b.config.DefaultBuckets = append([]float64(nil), bounds...)
	return b
}

// WithValidationMode selects strict or lenient label-schema enforcement for
// typed handles.
func (b *Builder) WithValidationMode(mode ValidationMode) *Builder {
	b.config.Validation = mode
	return b
}

// WithEventSink attaches sink and enables asynchronous event dispatch with
// the current DispatchConfig buffer settings.
func (b *Builder) WithEventSink(sink EventSink) *Builder {
	b.sink = sink
	b.config.Dispatch.Enabled = sink != nil
	return b
}

// WithDispatch replaces the dispatcher buffer settings.
func (b *Builder) WithDispatch(cfg DispatchConfig) *Builder {
	b.config.Dispatch = cfg
	return b
}

// Build validates the configuration and returns a ready Registry. A Builder
// is single-use.
func (b *Builder) Build() (*Registry, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if err := b.config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	b.built = true

	r := &Registry{
		counters:   make(map[string]*CounterEntry),
		gauges:     make(map[string]*GaugeEntry),
		histograms: make(map[string]*HistogramEntry),
		defs:       make(map[string]MetricDef),
		events:     eventlog.New(b.config.EventLog.HighWaterMark, b.config.EventLog.LowWaterMark),
		instanceID: uuid.NewString(),
		cfg:        b.config,
	}
	r.dispatcher = newDispatcher(b.config.Dispatch, b.sink)
	return r, nil
}
