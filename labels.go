package goMetrics

import (
	"sort"
	"strings"
)

// canonicalKey renders a metric name plus label set into a single
// deterministic identity. Label entries are ordered by plain byte comparison
// of their names, so two maps with the same pairs always produce the same key
// regardless of insertion order. With no labels the key is the bare name,
// otherwise name{k1="v1",k2="v2"}.
//
// Label values are embedded verbatim. A value containing '"', ',' or '}'
// yields an ambiguous key; known limitation, kept for exposition
// compatibility rather than silently escaped.
func canonicalKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.Grow(len(name) + 16*len(keys))
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(labels[k])
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

// matchesSchema reports whether labels carries exactly the declared label
// names: no extras, no omissions. Values are not constrained.
func matchesSchema(schema []string, labels map[string]string) bool {
	if len(labels) != len(schema) {
		return false
	}
	for _, name := range schema {
		if _, ok := labels[name]; !ok {
			return false
		}
	}
	return true
}

func cloneLabels(labels map[string]string) map[string]string {
	if len(labels) == 0 {
		return nil
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
