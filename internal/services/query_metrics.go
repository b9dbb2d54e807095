package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	searchRequests *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchGroups   prometheus.Histogram
	exportRequests *prometheus.CounterVec
	exportJournals prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		searchRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_search_requests_total",
				Help: "Total number of transaction group search requests",
			},
			[]string{"status"},
		),
		searchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_search_duration_seconds",
				Help:    "Transaction group search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		searchGroups: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_search_result_groups",
				Help:    "Number of groups returned per search",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_export_requests_total",
				Help: "Total number of journal export requests",
			},
			[]string{"status"},
		),
		exportJournals: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_export_journals",
				Help:    "Number of journals returned per export",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordSearch(status string, duration time.Duration, groups int) {
	m.searchRequests.WithLabelValues(status).Inc()
	m.searchDuration.Observe(duration.Seconds())
	if status == "success" {
		m.searchGroups.Observe(float64(groups))
	}
}

func (m *PrometheusMetrics) RecordExport(status string, journals int) {
	m.exportRequests.WithLabelValues(status).Inc()
	if status == "success" {
		m.exportJournals.Observe(float64(journals))
	}
}

// NoopMetrics is a metrics recorder that discards everything. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordSearch(string, time.Duration, int) {}
func (NoopMetrics) RecordExport(string, int)                {}
