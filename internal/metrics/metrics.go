// Package metrics exposes Prometheus counters for serve mode.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route pattern, and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pitchers",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by method, route, and status code.",
	}, []string{"method", "route", "status"})

	// CacheHits counts summary responses served from the in-memory cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pitchers",
		Name:      "summary_cache_hits_total",
		Help:      "Game summaries served from cache.",
	})

	// CacheMisses counts summary requests that went to the upstream API.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pitchers",
		Name:      "summary_cache_misses_total",
		Help:      "Game summaries recomputed from the upstream feed.",
	})

	// UpstreamErrors counts failed statsapi calls surfaced to clients.
	UpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pitchers",
		Name:      "upstream_errors_total",
		Help:      "Upstream statsapi failures returned as 502s.",
	})
)
