package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Search and bootstrap Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_requests_total",
			Help:      "Total number of search requests by outcome and whether a category filter was applied",
		},
		[]string{"outcome", "filtered"},
	)

	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_results",
			Help:      "Number of results returned per successful search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20},
		},
	)

	BootstrapAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bootstrap_attempts_total",
			Help:      "Document store connection attempts during startup",
		},
		[]string{"outcome"},
	)
)

var domainMetricsRegistered bool

// RegisterDomainMetrics registers search and bootstrap metrics. Must be called once from main.
func RegisterDomainMetrics() {
	if domainMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultsTotal)
	prometheus.MustRegister(BootstrapAttemptsTotal)
	domainMetricsRegistered = true
}

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
