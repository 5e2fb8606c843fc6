package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	insightsGenerated   *prometheus.CounterVec
	advisorCallDuration *prometheus.HistogramVec
	transactionQueries  *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		insightsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Total number of insight payloads generated, by tier",
			},
			[]string{"tier"},
		),
		advisorCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_call_duration_milliseconds",
				Help:    "Advisory model call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"status"},
		),
		transactionQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of transaction queries, by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordInsightGenerated(tier InsightTier) {
	m.insightsGenerated.WithLabelValues(string(tier)).Inc()
}

func (m *PrometheusMetrics) RecordAdvisorCallDuration(duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	m.advisorCallDuration.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordTransactionQuery(operation string) {
	m.transactionQueries.WithLabelValues(operation).Inc()
}

// noopMetrics is used in tests and when metrics are disabled.
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) RecordInsightGenerated(tier InsightTier)                        {}
func (noopMetrics) RecordAdvisorCallDuration(duration time.Duration, success bool) {}
func (noopMetrics) RecordTransactionQuery(operation string)                        {}
