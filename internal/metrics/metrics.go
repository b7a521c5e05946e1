package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the search and LLM counters.
const (
	StatusOK            = "ok"
	StatusError         = "error"
	StatusNotConfigured = "not_configured"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astrologer",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "astrologer",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"route"},
	)

	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astrologer",
			Name:      "search_queries_total",
			Help:      "Web search queries issued while augmenting requests",
		},
		[]string{"status"},
	)

	LLMGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astrologer",
			Name:      "llm_generations_total",
			Help:      "LLM generation attempts",
		},
		[]string{"status"},
	)

	ExternalLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "astrologer",
			Name:      "external_latency_seconds",
			Help:      "Latency of calls to external providers",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

// ObserveExternal records the latency of one provider call.
func ObserveExternal(provider string, seconds float64) {
	ExternalLatency.WithLabelValues(provider).Observe(seconds)
}
