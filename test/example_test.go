package test

import (
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
)

// ExampleNew demonstrates registry construction with an event sink.
func ExampleNew() {
	registry, _ := goMetrics.New().
		WithEventLogBounds(10000, 5000).
		WithEventSink(goMetrics.NewChannelSink(256)).
		Build()
	defer registry.Close()

	requests := registry.Counter("http_requests_total", "Handled HTTP requests.", "method", "route", "status")
	requests.Inc(map[string]string{"method": "GET", "route": "/x", "status": "200"})
}

// ExampleRegistry_Summary shows the cheap health-check report.
func ExampleRegistry_Summary() {
	registry, _ := goMetrics.New().Build()

	registry.Counter("jobs_total", "Completed jobs.").Inc(nil)
	registry.Gauge("queue_depth", "Current queue depth.").Set(nil, 4)

	s := registry.Summary()
	fmt.Println(s.Counters, s.Gauges, s.Histograms, s.TotalEvents)
	// Output: 1 1 0 2
}

// ExampleRegistry_ExportText shows the minimal line-oriented exposition.
func ExampleRegistry_ExportText() {
	registry, _ := goMetrics.New().Build()

	registry.Counter("jobs_total", "Completed jobs.").Inc(nil)

	export := registry.ExportText()
	_ = export // jobs_total 1 <timestamp-millis>
}
