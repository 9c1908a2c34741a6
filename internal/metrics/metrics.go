// Package metrics provides Prometheus metrics collection for the camp service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/u4rad/camp-service/internal/circuitbreaker"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DomainOperationsTotal counts business operations by name and outcome.
	DomainOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "camp_operations_total",
			Help: "Total number of camp-service business operations",
		},
		[]string{"operation", "status"},
	)

	// QuoteDuration tracks how long building a price quote takes.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "camp_quote_duration_seconds",
			Help:    "Quote computation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// EstimateGrandTotal observes the grand total of created cost summaries.
	EstimateGrandTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "camp_estimate_grand_total",
			Help:    "Grand total of created cost summaries",
			Buckets: prometheus.ExponentialBuckets(1000, 4, 8),
		},
	)

	// LogEntriesTotal counts request and audit log entries persisted by the
	// async logger, by result (written, dropped, failed).
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "camp_log_entries_total",
			Help: "Log entries handled by the async logger",
		},
		[]string{"result"},
	)

	// CircuitBreakerState is the current state per breaker:
	// 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "camp_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// Operation names recorded in DomainOperationsTotal.
const (
	OpSelectionReplace = "selection_replace"
	OpCostDistribute   = "cost_distribute"
	OpTestDataCreate   = "test_data_create"
	OpCouponValidate   = "coupon_validate"
	OpSummaryCreate    = "summary_create"
	OpPDFGenerate      = "pdf_generate"
	OpPDFUpload        = "pdf_upload"
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

// RecordOperation counts one business operation. A nil err is recorded as success.
func RecordOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DomainOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordQuote records the duration of a quote computation.
func RecordQuote(duration time.Duration) {
	QuoteDuration.Observe(duration.Seconds())
}

// RecordEstimate records the grand total of a newly created estimate.
func RecordEstimate(grandTotal float64) {
	EstimateGrandTotal.Observe(grandTotal)
}

// ObserveBreaker records a breaker transition. It matches
// circuitbreaker.Config.OnStateChange.
func ObserveBreaker(name string, _, to circuitbreaker.State) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(to))
}
