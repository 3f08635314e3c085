package eventlog

// Event is one immutable point-in-time observation. For counters Value is
// the post-increment cumulative value rather than the delta.
type Event struct {
	Name            string            `json:"name"`
	Kind            string            `json:"kind"`
	Value           float64           `json:"value"`
	Labels          map[string]string `json:"labels,omitempty"`
	TimestampMillis int64             `json:"timestamp_millis"`
}

// Log is an append-only sequence of events with high/low-watermark
// retention. It is not safe for concurrent use; the owning registry holds
// its lock across every call.
type Log struct {
	high   int
	low    int
	events []Event
}

// New returns a log that trims to low once its length exceeds high.
// Non-positive or inverted watermarks fall back to sane values so the log is
// always bounded.
func New(high, low int) *Log {
	if high <= 0 {
		high = 1
	}
	if low <= 0 {
		low = 1
	}
	if low > high {
		low = high
	}
	return &Log{high: high, low: low}
}

// Append stores e, discarding the oldest entries down to the low-water mark
// when the high-water mark is exceeded.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
	if len(l.events) > l.high {
		next := make([]Event, l.low)
		copy(next, l.events[len(l.events)-l.low:])
		l.events = next
	}
}

// Since returns a copy of all retained events with TimestampMillis >= cutoff,
// in original append order.
func (l *Log) Since(cutoff int64) []Event {
	out := make([]Event, 0, len(l.events))
	for _, e := range l.events {
		if e.TimestampMillis >= cutoff {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of retained events.
func (l *Log) Len() int { return len(l.events) }

// Reset discards all retained events.
func (l *Log) Reset() { l.events = nil }
