// Package internaldefs holds the small rendering helpers shared by the
// goMetrics exporters: label-pair formatting, sample-value formatting, and
// help-text escaping.
//
// # What this package must NOT do
//
//   - Read registry state or define metrics.
//   - Be imported outside the goMetrics module's export/ tree.
package internaldefs
