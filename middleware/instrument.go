package middleware

import (
	"net/http"
	"strconv"
	"time"

	goMetrics "github.com/MrEthical07/goMetrics"
)

// Instrument returns middleware recording http_requests_total{method,route,
// status} and http_request_duration_seconds{method,route} into registry.
// The route label is the caller-supplied pattern, not the raw URL path, so
// label cardinality stays bounded.
func Instrument(registry *goMetrics.Registry, route string) func(http.Handler) http.Handler {
	requests := registry.Counter("http_requests_total", "Handled HTTP requests.", "method", "route", "status")
	latency := registry.Histogram("http_request_duration_seconds", "HTTP request latency in seconds.", nil, "method", "route")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			requests.Inc(map[string]string{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(rec.status),
			})
			latency.Observe(map[string]string{
				"method": r.Method,
				"route":  route,
			}, time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
