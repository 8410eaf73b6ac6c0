package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registrations_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "registrations_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"limiter"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registrations_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// ParticipantOperations counts access-controlled operations by their terminal state
	ParticipantOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_participant_operations_total",
			Help: "Participant operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// CredentialsIssued counts generated one-time passwords
	CredentialsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_credentials_issued_total",
			Help: "Total number of one-time credentials issued",
		},
	)

	// CredentialIssuanceDuration measures password generation and hashing time
	CredentialIssuanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "registrations_credential_issuance_duration_seconds",
			Help:    "Credential issuance duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}

// RecordParticipantOperation records the terminal state of an access-controlled operation
func RecordParticipantOperation(operation, outcome string) {
	ParticipantOperations.WithLabelValues(operation, outcome).Inc()
}
