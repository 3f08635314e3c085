// Package collector periodically populates goMetrics gauges from external
// stores. The registry core performs no I/O; collectors are the
// database-polling collaborators that feed it record counts on a fixed
// interval, driven entirely by the caller's context for shutdown.
//
// A collection failure increments the collector's own error counter and
// leaves every previously-set gauge untouched — collaborator failures must
// never corrupt registry state.
package collector
