package goMetrics

import (
	"errors"
	"testing"
)

func TestBuilderSingleUse(t *testing.T) {
	b := New()
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderReused) {
		t.Fatalf("expected ErrBuilderReused, got %v", err)
	}
}

func TestBuilderRejectsInvalidWatermarks(t *testing.T) {
	if _, err := New().WithEventLogBounds(0, 0).Build(); !errors.Is(err, ErrEventLogBounds) {
		t.Fatalf("expected ErrEventLogBounds, got %v", err)
	}
	if _, err := New().WithEventLogBounds(10, 20).Build(); !errors.Is(err, ErrEventLogBounds) {
		t.Fatalf("expected ErrEventLogBounds for inverted marks, got %v", err)
	}
}

func TestBuilderRejectsUnsortedBuckets(t *testing.T) {
	if _, err := New().WithDefaultBuckets(1, 3, 2).Build(); !errors.Is(err, ErrBucketOrder) {
		t.Fatalf("expected ErrBucketOrder, got %v", err)
	}
	if _, err := New().WithDefaultBuckets(1, 1, 2).Build(); !errors.Is(err, ErrBucketOrder) {
		t.Fatalf("expected ErrBucketOrder for duplicate bounds, got %v", err)
	}
}

func TestBuilderRejectsUnknownValidationMode(t *testing.T) {
	if _, err := New().WithValidationMode(ValidationMode(99)).Build(); !errors.Is(err, ErrInvalidValidationMode) {
		t.Fatalf("expected ErrInvalidValidationMode, got %v", err)
	}
}

func TestBuilderConfigIsCloned(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultBuckets = []float64{1, 2, 3}

	b := New().WithConfig(cfg)
	cfg.DefaultBuckets[0] = 99 // must not leak into the builder

	r, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	r.ObserveHistogram("h", nil, 1, nil)
	if got := r.Histograms()["h"].Boundaries[0]; got != 1 {
		t.Fatalf("expected cloned config, first bound = %v", got)
	}
}

func TestBuilderEventLogBoundsApplied(t *testing.T) {
	r, err := New().WithEventLogBounds(100, 40).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for i := 0; i < 101; i++ {
		r.IncrementCounter("c", nil, 1)
	}

	if got := r.Summary().TotalEvents; got != 40 {
		t.Fatalf("expected trim to 40 retained events, got %d", got)
	}
}

func TestBuilderDistinctInstanceIDs(t *testing.T) {
	a := mustRegistry(t)
	b := mustRegistry(t)
	if a.Summary().InstanceID == b.Summary().InstanceID {
		t.Fatal("expected distinct instance IDs per registry")
	}
}
