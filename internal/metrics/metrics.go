// README: Prometheus metrics for pricing decisions and HTTP traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	quotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quotes_total",
			Help: "Total number of quotes issued, by price source",
		},
		[]string{"source"},
	)

	cityResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_city_resolutions_total",
			Help: "Total number of address to city resolutions, by outcome",
		},
		[]string{"result"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pricing_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route", "status"},
	)
)

// RecordQuote counts a quote by source ("fixed" or "metered").
func RecordQuote(source string) {
	quotesTotal.WithLabelValues(source).Inc()
}

// RecordCityResolution counts a resolution attempt.
func RecordCityResolution(resolved bool) {
	result := "miss"
	if resolved {
		result = "hit"
	}
	cityResolutionsTotal.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
