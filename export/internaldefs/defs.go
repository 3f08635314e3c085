package internaldefs

import (
	"sort"
	"strconv"
	"strings"
)

// FormatValue renders a sample value in the shortest exact decimal form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// LabelPairs renders a sorted label clause without surrounding braces, e.g.
// `method="GET",route="/x"`. Returns "" for an empty label set. Values are
// embedded verbatim — the same no-escaping limitation as the registry's
// canonical keys, kept so that exporter output and canonical keys agree.
func LabelPairs(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(labels[k])
		b.WriteByte('"')
	}
	return b.String()
}

// EscapeHelp escapes backslashes and newlines in HELP text per the
// Prometheus exposition rules.
func EscapeHelp(help string) string {
	help = strings.ReplaceAll(help, "\\", "\\\\")
	help = strings.ReplaceAll(help, "\n", "\\n")
	return help
}
