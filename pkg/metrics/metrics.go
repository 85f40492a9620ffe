package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "qa", Name: "http_requests_total", Help: "Number of HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	GraphQLOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "qa", Name: "graphql_operations_total", Help: "Number of resolved GraphQL operations by outcome."},
		[]string{"operation", "outcome"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "qa", Name: "store_operations_total", Help: "Number of document store calls by backend, operation and outcome."},
		[]string{"backend", "op", "outcome"},
	)
)

// Outcome labels shared by the counters above.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(GraphQLOperations)
	reg.MustRegister(StoreOperations)
}
