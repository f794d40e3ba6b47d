package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricTransactionMutation = "transaction_mutation"
	MetricTransactionRejected = "transaction_rejected"
	MetricBalanceDrift        = "balance_drift"
	MetricAuthenticationEvent = "authentication_event"
	MetricHTTPError           = "http_error"
	MetricReconciliation      = "reconciliation"
	MetricBalanceDelta        = "balance_delta"
	MetricExportDuration      = "export"
)

type PrometheusMetrics struct {
	transactionMutations      *prometheus.CounterVec
	transactionRejections     *prometheus.CounterVec
	balanceDriftTotal         prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
	httpErrorsTotal           *prometheus.CounterVec
	unitOfWorkDuration        *prometheus.HistogramVec
	reconciliationDuration    prometheus.Histogram
	exportDuration            prometheus.Histogram
	lastBalanceDelta          *prometheus.GaugeVec
}

// NewPrometheusMetrics registers every collector on reg. Tests pass a fresh
// registry so repeated construction does not panic on duplicate registration.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbuddy_transaction_mutations_total",
				Help: "Total number of committed transaction mutations",
			},
			[]string{"operation"},
		),
		transactionRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbuddy_transaction_rejections_total",
				Help: "Total number of transaction mutations rejected before reconciliation",
			},
			[]string{"operation", "reason"},
		),
		balanceDriftTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budgetbuddy_balance_drift_total",
				Help: "Total number of reconciliation checks that found a drifted balance",
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbuddy_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		httpErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetbuddy_http_errors_total",
				Help: "Total number of error responses by error code",
			},
			[]string{"code", "status"},
		),
		unitOfWorkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetbuddy_unit_of_work_duration_milliseconds",
				Help:    "Duration of transaction units of work in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		reconciliationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budgetbuddy_reconciliation_duration_milliseconds",
				Help:    "Duration of balance verification in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budgetbuddy_export_duration_seconds",
				Help:    "Duration of user data exports in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastBalanceDelta: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budgetbuddy_last_balance_delta",
				Help: "Most recent balance delta applied per direction",
			},
			[]string{"direction"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricTransactionMutation:
		m.transactionMutations.WithLabelValues(operation).Inc()
	case MetricTransactionRejected:
		m.transactionRejections.WithLabelValues(operation, tags["reason"]).Inc()
	case MetricBalanceDrift:
		m.balanceDriftTotal.Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricHTTPError:
		m.httpErrorsTotal.WithLabelValues(tags["code"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricReconciliation:
		m.reconciliationDuration.Observe(float64(duration.Milliseconds()))
	case MetricExportDuration:
		m.exportDuration.Observe(duration.Seconds())
	default:
		m.unitOfWorkDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricBalanceDelta {
		m.lastBalanceDelta.WithLabelValues(tags["direction"]).Set(value)
	}
}

// NoopMetrics discards everything. Used where no registry is wired.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}

func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
