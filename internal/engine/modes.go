package engine

import (
	"time"

	"github.com/ahrav/go-overtime/internal/ports"
)

// DefaultPollingPeriod is the polling interval used by callers that have no
// reason to choose their own.
const DefaultPollingPeriod = 10 * time.Millisecond

// Timeout creates a verification that succeeds as soon as the check is
// satisfied, polling every pollingPeriod and giving up once timeout has
// elapsed. This is the early-return policy: time remaining after the first
// success is not spent.
func Timeout(pollingPeriod, timeout time.Duration, check ports.Check) (*OverTime, error) {
	return NewOverTime(Config{
		PollingPeriod:   pollingPeriod,
		Duration:        timeout,
		ReturnOnSuccess: true,
	}, check)
}

// After creates a verification that only succeeds once the full delay has
// elapsed with the check satisfied on its final poll and no failure
// observed afterward. This is the must-hold policy: an early success keeps
// the engine polling, and a later failure overwrites it.
func After(pollingPeriod, delay time.Duration, check ports.Check) (*OverTime, error) {
	return NewOverTime(Config{
		PollingPeriod:   pollingPeriod,
		Duration:        delay,
		ReturnOnSuccess: false,
	}, check)
}
