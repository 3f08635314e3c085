package goMetrics

import "testing"

func TestCanonicalKeyLabelOrderIndependent(t *testing.T) {
	a := canonicalKey("x", map[string]string{"a": "1", "b": "2"})
	b := canonicalKey("x", map[string]string{"b": "2", "a": "1"})
	if a != b {
		t.Fatalf("expected identical keys, got %q vs %q", a, b)
	}
	if a != `x{a="1",b="2"}` {
		t.Fatalf("unexpected key rendering: %q", a)
	}
}

func TestCanonicalKeyNoLabels(t *testing.T) {
	if got := canonicalKey("plain", nil); got != "plain" {
		t.Fatalf("expected bare name, got %q", got)
	}
	if got := canonicalKey("plain", map[string]string{}); got != "plain" {
		t.Fatalf("expected bare name for empty map, got %q", got)
	}
}

func TestCanonicalKeyValuesVerbatim(t *testing.T) {
	// embedded quotes and commas are not escaped; documented limitation
	got := canonicalKey("m", map[string]string{"k": `a,"b`})
	if got != `m{k="a,"b"}` {
		t.Fatalf("expected verbatim value embedding, got %q", got)
	}
}

func TestCanonicalKeyDeterministic(t *testing.T) {
	labels := map[string]string{"z": "9", "a": "1", "m": "5"}
	first := canonicalKey("x", labels)
	for i := 0; i < 50; i++ {
		if got := canonicalKey("x", labels); got != first {
			t.Fatalf("key changed across calls: %q vs %q", got, first)
		}
	}
}

func TestMatchesSchema(t *testing.T) {
	schema := []string{"method", "route"}

	if !matchesSchema(schema, map[string]string{"method": "GET", "route": "/x"}) {
		t.Fatal("expected exact label set to match")
	}
	if matchesSchema(schema, map[string]string{"method": "GET"}) {
		t.Fatal("expected missing label to be rejected")
	}
	if matchesSchema(schema, map[string]string{"method": "GET", "route": "/x", "extra": "1"}) {
		t.Fatal("expected extra label to be rejected")
	}
	if !matchesSchema(nil, nil) {
		t.Fatal("expected empty schema to match empty labels")
	}
}
