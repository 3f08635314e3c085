package goMetrics

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestChannelSinkReceivesIngestionEvents(t *testing.T) {
	sink := NewChannelSink(16)
	r, err := New().WithEventSink(sink).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer r.Close()

	r.IncrementCounter("hits", map[string]string{"route": "/x"}, 1)
	r.IncrementCounter("hits", map[string]string{"route": "/x"}, 1)

	for want := 1.0; want <= 2.0; want++ {
		select {
		case e := <-sink.Events():
			if e.Name != "hits" || e.Kind != string(KindCounter) {
				t.Fatalf("unexpected event: %+v", e)
			}
			if e.Value != want {
				t.Fatalf("expected cumulative value %v, got %v", want, e.Value)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for dispatched event")
		}
	}
}

type blockingSink struct {
	gate chan struct{}
}

func (s *blockingSink) Emit(ctx context.Context, _ Event) {
	select {
	case <-s.gate:
	case <-ctx.Done():
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &blockingSink{gate: make(chan struct{})}
	r, err := New().
		WithEventSink(sink).
		WithDispatch(DispatchConfig{Enabled: true, BufferSize: 1, DropIfFull: true}).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		r.IncrementCounter("c", nil, 1)
	}

	// one event is stuck in the sink, one fills the buffer; the rest drop
	deadline := time.Now().Add(2 * time.Second)
	for r.EventsDropped() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected dropped events under backpressure")
		}
		time.Sleep(time.Millisecond)
	}

	// registry state is unaffected by sink backpressure
	if got := r.CounterValue("c", nil); got != 50 {
		t.Fatalf("expected counter 50 despite drops, got %v", got)
	}

	close(sink.gate)
	r.Close()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestJSONWriterSinkWritesEventLines(t *testing.T) {
	var buf syncBuffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{
		Name:            "hits",
		Kind:            string(KindCounter),
		Value:           3,
		Labels:          map[string]string{"route": "/x"},
		TimestampMillis: 1700000000000,
	})

	line := strings.TrimSpace(buf.String())
	var decoded map[string]any
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("invalid JSON line %q: %v", line, err)
	}
	if decoded["name"] != "hits" || decoded["kind"] != "counter" {
		t.Fatalf("unexpected payload: %v", decoded)
	}
	if decoded["value"].(float64) != 3 {
		t.Fatalf("unexpected value: %v", decoded["value"])
	}
}

func TestCloseIsIdempotentAndDrains(t *testing.T) {
	sink := NewChannelSink(64)
	r, err := New().WithEventSink(sink).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		r.IncrementCounter("c", nil, 1)
	}

	r.Close()
	r.Close()

	// ingestion after close still lands in the stores
	r.IncrementCounter("c", nil, 1)
	if got := r.CounterValue("c", nil); got != 11 {
		t.Fatalf("expected 11, got %v", got)
	}

	received := 0
	for {
		select {
		case <-sink.Events():
			received++
			continue
		default:
		}
		break
	}
	if received == 0 {
		t.Fatal("expected close to drain buffered events into the sink")
	}
}

func TestDispatchDisabledByDefault(t *testing.T) {
	r := mustRegistry(t)
	r.IncrementCounter("c", nil, 1)
	if got := r.EventsDropped(); got != 0 {
		t.Fatalf("expected 0 drops without dispatch, got %d", got)
	}
	r.Close()
}
