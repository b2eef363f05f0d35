package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Kết quả login dùng làm label
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginError   = "error"
)

// HTTPRequests counts served requests by method, route template and status.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookstore_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	},
	[]string{"method", "route", "status"},
)

// HTTPDuration observes request latency per route template.
var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bookstore_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// LoginAttempts counts login attempts by result.
var LoginAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookstore_login_attempts_total",
		Help: "Total login attempts by result",
	},
	[]string{"result"},
)

// CacheLookups counts repository cache lookups by result (hit, miss, error).
var CacheLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookstore_cache_lookups_total",
		Help: "Total repository cache lookups by result",
	},
	[]string{"result"},
)

// RegisterMetrics registers every collector with reg. Panics on duplicate
// registration, following the prometheus convention.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, HTTPDuration, LoginAttempts, CacheLookups)
}

func RecordHTTPRequest(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordLogin(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}

func RecordCacheLookup(result string) {
	CacheLookups.WithLabelValues(result).Inc()
}
