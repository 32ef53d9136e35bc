// Package metrics exposes Prometheus metrics for the view service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campeonato"

var (
	viewsAssembled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_assembled_total",
		Help:      "Competition views assembled, labeled by competition system.",
	}, []string{"system"})

	viewCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_cache_hits_total",
		Help:      "View assemblies answered from the memo cache.",
	})

	viewCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_cache_misses_total",
		Help:      "View assemblies that had to recompute.",
	})

	backendFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_fetch_duration_seconds",
		Help:      "Duration of the parallel competition data fetch.",
		Buckets:   prometheus.DefBuckets,
	})

	refreshCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "refresh_cycle_duration_seconds",
		Help:      "Duration of one full refresh scheduler cycle.",
		Buckets:   prometheus.DefBuckets,
	})

	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ws_clients",
		Help:      "Currently connected WebSocket clients.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func RecordViewAssembled(system string)   { viewsAssembled.WithLabelValues(system).Inc() }
func RecordViewCacheHit()                 { viewCacheHits.Inc() }
func RecordViewCacheMiss()                { viewCacheMisses.Inc() }
func ObserveBackendFetch(seconds float64) { backendFetchDuration.Observe(seconds) }
func ObserveRefreshCycle(seconds float64) { refreshCycleDuration.Observe(seconds) }
func WSClientConnected()                  { wsClients.Inc() }
func WSClientDisconnected()               { wsClients.Dec() }

func RecordHTTPRequest(route, method, status string) {
	httpRequests.WithLabelValues(route, method, status).Inc()
}

func ObserveHTTPRequest(route, method string, seconds float64) {
	httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
