package goMetrics

// Config defines the tunable behavior of a Registry.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	EventLog       EventLogConfig
	Dispatch       DispatchConfig
	DefaultBuckets []float64
	Validation     ValidationMode
}

/*
====================================
EVENT LOG CONFIG
====================================
*/

// EventLogConfig bounds the registry's retained event log. Appends are
// unconditional; once the log length exceeds HighWaterMark the oldest
// entries are discarded down to LowWaterMark. The bursty trim trades strict
// memory bounds for amortized O(1) appends.
type EventLogConfig struct {
	HighWaterMark int
	LowWaterMark  int
}

/*
====================================
DISPATCH CONFIG
====================================
*/

// DispatchConfig controls the optional asynchronous event dispatcher that
// forwards every ingested event to an EventSink. Disabled by default; the
// retained event log works either way.
type DispatchConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
VALIDATION MODE
====================================
*/

// ValidationMode selects how typed handles treat label maps that do not
// match their declared schema.
type ValidationMode int

const (
	// ValidationStrict drops non-conforming samples and counts them in
	// Summary().SchemaViolations.
	ValidationStrict ValidationMode = iota
	// ValidationLenient accepts arbitrary label maps unchecked.
	ValidationLenient
)

/*
====================================
DEFAULT CONFIG
====================================
*/

const (
	defaultHighWaterMark = 10000
	defaultLowWaterMark  = 5000
)

// DefaultConfig returns the configuration used by New when no overrides are
// applied. Default histogram buckets cover 5ms to 10s, matching the usual
// latency-in-seconds instrumentation range.
func DefaultConfig() Config {
	return Config{
		EventLog: EventLogConfig{
			HighWaterMark: defaultHighWaterMark,
			LowWaterMark:  defaultLowWaterMark,
		},
		Dispatch: DispatchConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		DefaultBuckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		Validation:     ValidationStrict,
	}
}

func cloneConfig(c Config) Config {
	out := c
	if len(c.DefaultBuckets) > 0 {
		out.DefaultBuckets = append([]float64(nil), c.DefaultBuckets...)
	}
	return out
}

func (c Config) validate() error {
	if c.EventLog.HighWaterMark <= 0 || c.EventLog.LowWaterMark <= 0 {
		return ErrEventLogBounds
	}
	if c.EventLog.LowWaterMark > c.EventLog.HighWaterMark {
		return ErrEventLogBounds
	}
	for i := 1; i < len(c.DefaultBuckets); i++ {
		if c.DefaultBuckets[i] <= c.DefaultBuckets[i-1] {
			return ErrBucketOrder
		}
	}
	switch c.Validation {
	case ValidationStrict, ValidationLenient:
	default:
		return ErrInvalidValidationMode
	}
	return nil
}
