package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_store_queries_total",
			Help: "Total queries issued against the backing stores",
		},
		[]string{"query", "status"},
	)

	StoreQueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_store_query_latency_seconds",
			Help:    "Backing store query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	PageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_page_renders_total",
			Help: "Total dashboard page renders",
		},
		[]string{"page", "status"},
	)
)

// ObserveQuery records the outcome and latency of one store query.
func ObserveQuery(query string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreQueriesTotal.WithLabelValues(query, status).Inc()
	StoreQueryLatency.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

// ObserveRender records the outcome of one page render.
func ObserveRender(page string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	PageRendersTotal.WithLabelValues(page, status).Inc()
}
