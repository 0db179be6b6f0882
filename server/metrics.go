package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the search metrics of one Server.
type metrics struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	expanded prometheus.Histogram
	limited  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jps_searches_total",
			Help: "Total path searches by outcome",
		}, []string{"status"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_expanded_nodes",
			Help:    "Nodes expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		limited: f.NewCounter(prometheus.CounterOpts{
			Name: "jps_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}
}
