package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricOperation     = "ledger.operation"
	MetricBalanceChange = "ledger.balance_change"
	MetricAccounts      = "ledger.accounts"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration prometheus.Histogram
	balanceChange     *prometheus.HistogramVec
	accountsTotal     *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ledger collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_seconds",
				Help:    "Ledger operation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		balanceChange: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_balance_change_amount",
				Help:    "Absolute balance change per successful operation in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		accountsTotal: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_accounts_total",
				Help: "Current number of accounts by type",
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricOperation:
		status := tags["status"]
		if status == "" {
			status = "success"
		}
		m.operationsTotal.WithLabelValues(tags["operation"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricOperation:
		m.operationDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAccounts:
		if kind := tags["kind"]; kind != "" {
			m.accountsTotal.WithLabelValues(kind).Set(value)
		}
	}
}

// ObserveValue adds a sample to a distribution metric
func (m *PrometheusMetrics) ObserveValue(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBalanceChange:
		if value < 0 {
			value = -value
		}
		m.balanceChange.WithLabelValues(tags["operation"]).Observe(value)
	}
}
