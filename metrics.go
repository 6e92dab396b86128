package cryptoapi

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cryptoapi",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "API requests issued, by endpoint and outcome.",
		},
		[]string{"endpoint", "status"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cryptoapi",
			Subsystem: "client",
			Name:      "request_failures_total",
			Help:      "Failed API requests, by endpoint and failure kind.",
		},
		[]string{"endpoint", "kind"},
	)
)

func recordRequest(endpoint string, err error) {
	if err == nil {
		requestsTotal.WithLabelValues(endpoint, "ok").Inc()
		return
	}
	requestsTotal.WithLabelValues(endpoint, "error").Inc()
	requestFailuresTotal.WithLabelValues(endpoint, failureKind(err)).Inc()
}

// failureKind buckets an error into a low-cardinality label.
func failureKind(err error) string {
	var (
		rlErr  *api.RateLimitError
		payErr *api.PaymentRequiredError
		netErr *api.NetworkError
	)
	switch {
	case errors.As(err, &rlErr):
		return "rate_limited"
	case errors.As(err, &payErr):
		return "payment_required"
	case errors.As(err, &netErr):
		return "connection"
	default:
		return "api"
	}
}
