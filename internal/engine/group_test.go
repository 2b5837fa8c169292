package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-overtime/internal/domain"
)

func TestVerifyAll_AllSucceed(t *testing.T) {
	// Given two independent verifications, each with its own engine
	first := NewMockCheck()
	first.FailUntilAttempt = 1
	second := NewMockCheck()

	v1, err := Timeout(5*time.Millisecond, time.Second, first)
	require.NoError(t, err, "first engine should construct")
	v2, err := Timeout(5*time.Millisecond, time.Second, second)
	require.NoError(t, err, "second engine should construct")

	// When running them concurrently
	err = VerifyAll(context.Background(),
		Verification{Engine: v1, Data: domain.NewData()},
		Verification{Engine: v2, Data: domain.NewData()},
	)

	// Then both verifications complete successfully
	require.NoError(t, err, "all verifications should succeed")
	assert.GreaterOrEqual(t, first.GetCallCount(), 2, "first check should have been polled to success")
	assert.GreaterOrEqual(t, second.GetCallCount(), 1, "second check should have been polled")
}

func TestVerifyAll_FirstFailureWins(t *testing.T) {
	// Given one verification that fails permanently
	failure := errors.New("no further interaction allowed")
	failing := NewMockCheck()
	failing.AlwaysFail = true
	failing.Unrecoverable = true
	failing.Err = failure
	healthy := NewMockCheck()

	v1, err := Timeout(5*time.Millisecond, 10*time.Second, failing)
	require.NoError(t, err, "failing engine should construct")
	v2, err := Timeout(5*time.Millisecond, 10*time.Second, healthy)
	require.NoError(t, err, "healthy engine should construct")

	// When running them concurrently
	start := time.Now()
	err = VerifyAll(context.Background(),
		Verification{Engine: v1, Data: domain.NewData()},
		Verification{Engine: v2, Data: domain.NewData()},
	)

	// Then the permanent failure is returned without waiting out the
	// remaining time budget
	require.Error(t, err, "group verification should fail")
	assert.Equal(t, failure, err, "failure value should be propagated unchanged")
	assert.Less(t, time.Since(start), 5*time.Second, "failure should not wait for the full duration")
}
