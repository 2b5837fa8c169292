package engine

import (
	"context"
	"sync"
	"time"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/ports"
)

var (
	_ ports.Check         = (*MockCheck)(nil)
	_ ports.RecoveryAware = (*MockCheck)(nil)
)

// MockCheck provides a configurable mock implementation of ports.Check for
// testing. It allows precise control over failure behavior, recoverability
// classification, and timing to facilitate comprehensive engine testing.
type MockCheck struct {
	mu sync.Mutex

	// Behavior configuration
	CheckName        string
	Err              error         // Error to return on failing polls
	FailUntilAttempt int           // Fail for first N attempts, then succeed
	AlwaysFail       bool          // Fail on every poll
	Unrecoverable    bool          // Classify failures as permanent
	VerifyDelay      time.Duration // Simulated work per poll

	// Tracking
	CallCount      int
	LastData       *domain.Data
	CallTimestamps []time.Time
}

// NewMockCheck creates a mock check with default successful behavior.
func NewMockCheck() *MockCheck {
	return &MockCheck{
		CheckName:      "mock-check",
		CallTimestamps: make([]time.Time, 0),
	}
}

// Name returns the configured check name.
func (m *MockCheck) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CheckName
}

// Verify implements the ports.Check interface with configurable behavior.
func (m *MockCheck) Verify(ctx context.Context, data *domain.Data) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastData = data
	m.CallTimestamps = append(m.CallTimestamps, time.Now())

	if m.VerifyDelay > 0 {
		select {
		case <-time.After(m.VerifyDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if m.AlwaysFail || (m.FailUntilAttempt > 0 && m.CallCount <= m.FailUntilAttempt) {
		return m.failure()
	}

	return nil
}

// RecoverableOnFailure implements ports.RecoveryAware using the configured
// classification.
func (m *MockCheck) RecoverableOnFailure() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.Unrecoverable
}

func (m *MockCheck) failure() error {
	if m.Err != nil {
		return m.Err
	}
	return domain.NewAssertionError(m.CheckName, "simulated failure")
}

// GetCallCount returns the number of Verify invocations observed so far.
func (m *MockCheck) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// GetTimeBetweenCalls returns the elapsed time between two recorded polls,
// or nil if either index is out of range.
func (m *MockCheck) GetTimeBetweenCalls(first, second int) *time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if first < 0 || second >= len(m.CallTimestamps) || first >= second {
		return nil
	}
	d := m.CallTimestamps[second].Sub(m.CallTimestamps[first])
	return &d
}

// Reset clears all tracking data while preserving configuration.
func (m *MockCheck) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastData = nil
	m.CallTimestamps = make([]time.Time, 0)
}
