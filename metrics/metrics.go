package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// The collectors below are registered with the default registry when the
// package is loaded.
var (
	// OperationsTotal counts follow graph operations by name and outcome.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_operations_total",
			Help: "Total number of follow graph operations",
		},
		[]string{"op", "outcome"},
	)

	// OperationDuration measures how long each graph operation takes,
	// including time spent waiting on the concurrency gate.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_operation_duration_seconds",
			Help:    "Duration of follow graph operations in seconds",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"op"},
	)

	// CurrentVersion tracks the version new writes are applied to.
	CurrentVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "socialnet_current_version",
			Help: "Current version of the follow graph",
		},
	)

	// RPCRequestsTotal counts gRPC requests by method and status code.
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_rpc_requests_total",
			Help: "Total number of gRPC requests processed",
		},
		[]string{"method", "code"},
	)

	// HTTPRequestsTotal counts HTTP requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency by method and route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Outcome labels used with OperationsTotal.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeError   = "error"
	OutcomeOK      = "ok"
)
