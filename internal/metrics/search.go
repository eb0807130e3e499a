package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagrank",
			Name:      "searches_total",
			Help:      "Total number of search requests by outcome",
		},
		[]string{"outcome"}, // "ok" / "empty" / "invalid_query" / "error"
	)

	SearchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tagrank",
			Name:      "search_candidates",
			Help:      "Number of candidates ranked per search",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	SearchDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tagrank",
			Name:      "search_degraded_total",
			Help:      "Searches where the candidate retrieval ceiling was hit",
		},
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers the search collectors with the default
// registry. Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(SearchesTotal, SearchCandidates, SearchDegradedTotal)
	})
}
