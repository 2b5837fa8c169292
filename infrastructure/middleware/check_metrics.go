package middleware

import (
	"context"
	"time"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/ports"
)

var (
	_ ports.Check         = (*meteredCheck)(nil)
	_ ports.RecoveryAware = (*meteredCheck)(nil)
)

// meteredCheck records per-poll latency and outcome counters through a
// MetricsCollector.
type meteredCheck struct {
	next      ports.Check
	collector ports.MetricsCollector
}

// MetricsCheckMiddleware creates middleware that records the latency and
// pass/fail outcome of every poll against the wrapped check.
func MetricsCheckMiddleware(collector ports.MetricsCollector) CheckMiddleware {
	return func(next ports.Check) ports.Check {
		return &meteredCheck{
			next:      next,
			collector: collector,
		}
	}
}

// Name returns the wrapped check's name.
func (m *meteredCheck) Name() string { return m.next.Name() }

// Verify forwards the poll and records its latency and outcome.
func (m *meteredCheck) Verify(ctx context.Context, data *domain.Data) error {
	start := time.Now()
	err := m.next.Verify(ctx, data)

	status := "pass"
	if err != nil {
		status = "fail"
	}
	labels := map[string]string{
		"check":  m.next.Name(),
		"status": status,
	}
	m.collector.RecordLatency("check_verify", time.Since(start), labels)
	m.collector.RecordCounter("check_polls", 1, labels)

	return err
}

// RecoverableOnFailure forwards the wrapped check's classification.
func (m *meteredCheck) RecoverableOnFailure() bool { return recoverableOnFailure(m.next) }
