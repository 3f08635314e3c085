package goMetrics

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ExportText renders the current counter and gauge state into the
// line-oriented exposition format:
//
//	metric_name{label1="v1",label2="v2"} value timestamp
//
// The label clause (braces included) is omitted for unlabeled metrics.
// Counters come first, then gauges, each ordered by canonical key so that
// repeated exports without intervening writes differ only in the timestamp
// field. The timestamp is the export call's capture time in epoch
// milliseconds, applied uniformly to every line; it is not each metric's own
// last-update time. Histograms are not part of this minimal export — the
// export/prometheus package renders full histogram exposition. Lines are
// newline-joined with no trailing newline.
func (r *Registry) ExportText() string {
	if r == nil {
		return ""
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	b.Grow(64 * (len(r.counters) + len(r.gauges)))

	first := true
	for _, key := range sortedKeys(r.counters) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(key)
		b.WriteByte(' ')
		b.WriteString(formatValue(r.counters[key].Value))
		b.WriteByte(' ')
		b.WriteString(ts)
	}
	for _, key := range sortedKeys(r.gauges) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(key)
		b.WriteByte(' ')
		b.WriteString(formatValue(r.gauges[key].Value))
		b.WriteByte(' ')
		b.WriteString(ts)
	}
	return b.String()
}

// formatValue renders a sample value in the shortest exact decimal form
// ("3", not "3.000000").
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
