package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-overtime/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of poll volume, check
// latency, and verification outcomes.
type PrometheusMetrics struct {
	checkLatency     *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	systemGauges     *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the global Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		checkLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "verification_check_duration_seconds",
				Help:    "Latency of individual polls against delegate checks.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "check"},
		),
		operationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verification_operations_total",
				Help: "Total number of polling operations by check and outcome.",
			},
			[]string{"metric", "status", "check"},
		),
		systemGauges: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "verification_system_state",
				Help: "Current system state values for the verification engine.",
			},
			[]string{"metric", "check"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// poll latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	check, ok := labels["check"]
	if !ok || check == "" {
		check = "unknown"
	}
	pm.checkLatency.WithLabelValues(operation, check).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	check, ok := labels["check"]
	if !ok || check == "" {
		check = "unknown"
	}
	status, ok := labels["status"]
	if !ok || status == "" {
		status = "unknown"
	}
	pm.operationCounter.WithLabelValues(metric, status, check).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	check, ok := labels["check"]
	if !ok || check == "" {
		check = "unknown"
	}
	pm.systemGauges.WithLabelValues(metric, check).Set(value)
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
