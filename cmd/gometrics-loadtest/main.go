// Command gometrics-loadtest hammers a registry with concurrent ingestion
// and reports throughput, export latency, and the final registry summary.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	goMetrics "github.com/MrEthical07/goMetrics"
)

func main() {
	var (
		workers     = flag.Int("workers", 64, "number of concurrent ingestion workers")
		ops         = flag.Int("ops", 100000, "operations per worker")
		cardinality = flag.Int("cardinality", 32, "distinct label values per metric")
		exports     = flag.Int("exports", 100, "ExportText calls to time after ingestion")
	)
	flag.Parse()

	if *workers <= 0 || *ops <= 0 || *cardinality <= 0 {
		fmt.Fprintln(os.Stderr, "workers, ops, and cardinality must be > 0")
		os.Exit(2)
	}

	registry, err := goMetrics.New().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	requests := registry.Counter("loadtest_requests_total", "Loadtest request counter.", "route")
	depth := registry.Gauge("loadtest_queue_depth", "Loadtest queue depth.", "queue")
	latency := registry.Histogram("loadtest_latency_seconds", "Loadtest latency histogram.", nil, "route")

	routes := make([]string, *cardinality)
	for i := range routes {
		routes[i] = "/r/" + strconv.Itoa(i)
	}

	fmt.Printf("ingesting: %d workers x %d ops, %d label values\n", *workers, *ops, *cardinality)
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(*workers)
	for w := 0; w < *workers; w++ {
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < *ops; i++ {
				route := routes[rng.Intn(len(routes))]
				switch i % 3 {
				case 0:
					requests.Inc(map[string]string{"route": route})
				case 1:
					depth.Set(map[string]string{"queue": route}, float64(rng.Intn(1000)))
				default:
					latency.Observe(map[string]string{"route": route}, rng.Float64())
				}
			}
		}(int64(w))
	}
	wg.Wait()

	elapsed := time.Since(start)
	total := *workers * *ops
	fmt.Printf("ingested %d ops in %s (%.0f ops/sec)\n",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())

	exportStart := time.Now()
	var lastLen int
	for i := 0; i < *exports; i++ {
		lastLen = len(registry.ExportText())
	}
	exportElapsed := time.Since(exportStart)
	fmt.Printf("%d exports in %s (%s/export, %d bytes each)\n",
		*exports, exportElapsed.Round(time.Millisecond),
		(exportElapsed / time.Duration(*exports)).Round(time.Microsecond), lastLen)

	s := registry.Summary()
	fmt.Printf("summary: counters=%d gauges=%d histograms=%d events=%d violations=%d\n",
		s.Counters, s.Gauges, s.Histograms, s.TotalEvents, s.SchemaViolations)
}
