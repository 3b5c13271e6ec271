package analytics

import "github.com/prometheus/client_golang/prometheus"

var apiRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "uaconf",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Total number of Management API requests by kind, operation and outcome",
	},
	[]string{"kind", "op", "outcome"},
)

func init() {
	prometheus.MustRegister(apiRequests)
}

func observeRequest(kind, op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	apiRequests.WithLabelValues(kind, op, outcome).Inc()
}
