package reconcile

import "github.com/prometheus/client_golang/prometheus"

var (
	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uaconf",
			Subsystem: "reconcile",
			Name:      "stage_duration_seconds",
			Help:      "Duration of reconciliation stages in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"stage"},
	)

	resourcesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uaconf",
			Subsystem: "reconcile",
			Name:      "resources_total",
			Help:      "Reconciled resources by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	retriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uaconf",
			Subsystem: "api",
			Name:      "retries_total",
			Help:      "Backoff retries of Management API calls by transient reason",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(stageDuration, resourcesTotal, retriesTotal)
}
