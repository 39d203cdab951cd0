package obs

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apexutravel_cache_operations_total",
		Help: "Catalog cache operations by backend and result.",
	}, []string{"backend", "result"})

	altSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apexutravel_alt_date_searches_total",
		Help: "Alternative-date sub-search outcomes by offset.",
	}, []string{"offset", "outcome"})
)

// ObserveCache records a cache hit/miss/set/del for a backend.
func ObserveCache(backend, result string) {
	cacheOps.WithLabelValues(backend, result).Inc()
}

// ObserveAltSearch records one alternative-date sub-search outcome.
func ObserveAltSearch(offset int, outcome string) {
	altSearches.WithLabelValues(strconv.Itoa(offset), outcome).Inc()
}
