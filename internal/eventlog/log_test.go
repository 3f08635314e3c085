package eventlog

import "testing"

func appendN(l *Log, n int, start int64) {
	for i := 0; i < n; i++ {
		l.Append(Event{Name: "x", Kind: "counter", Value: float64(i), TimestampMillis: start + int64(i)})
	}
}

func TestLogAppendOrderPreserved(t *testing.T) {
	l := New(100, 50)
	appendN(l, 10, 0)

	got := l.Since(0)
	if len(got) != 10 {
		t.Fatalf("expected 10 events, got %d", len(got))
	}
	for i, e := range got {
		if e.TimestampMillis != int64(i) {
			t.Fatalf("event %d out of order: ts=%d", i, e.TimestampMillis)
		}
	}
}

func TestLogTrimToLowWaterMark(t *testing.T) {
	l := New(100, 40)
	appendN(l, 101, 0)

	if got := l.Len(); got != 40 {
		t.Fatalf("expected trim to 40, got %d", got)
	}

	// oldest entries must be the ones discarded
	events := l.Since(0)
	if events[0].TimestampMillis != 61 {
		t.Fatalf("expected oldest retained ts=61, got %d", events[0].TimestampMillis)
	}
	if events[len(events)-1].TimestampMillis != 100 {
		t.Fatalf("expected newest retained ts=100, got %d", events[len(events)-1].TimestampMillis)
	}
}

func TestLogBoundedGrowth(t *testing.T) {
	l := New(100, 50)
	appendN(l, 1000, 0)

	if got := l.Len(); got > 100 {
		t.Fatalf("log exceeded high-water mark: %d", got)
	}
	if got := l.Len(); got < 50 {
		t.Fatalf("log trimmed below low-water mark: %d", got)
	}
}

func TestLogSinceCutoff(t *testing.T) {
	l := New(100, 50)
	appendN(l, 20, 0)

	got := l.Since(15)
	if len(got) != 5 {
		t.Fatalf("expected 5 events at ts>=15, got %d", len(got))
	}
	if got[0].TimestampMillis != 15 {
		t.Fatalf("cutoff must be inclusive, first ts=%d", got[0].TimestampMillis)
	}
}

func TestLogDegenerateWatermarks(t *testing.T) {
	l := New(0, 0)
	appendN(l, 5, 0)
	if got := l.Len(); got != 1 {
		t.Fatalf("expected degenerate log to hold 1 event, got %d", got)
	}

	inverted := New(10, 20)
	appendN(inverted, 11, 0)
	if got := inverted.Len(); got != 10 {
		t.Fatalf("expected low clamped to high, len=%d", got)
	}
}

func TestLogReset(t *testing.T) {
	l := New(100, 50)
	appendN(l, 10, 0)
	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("expected empty log after reset, got %d", l.Len())
	}
}
