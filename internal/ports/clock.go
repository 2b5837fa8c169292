package ports

import "time"

// Clock provides the time operations the engine depends on.
// This interface enables dependency injection for testing timer behavior
// without real wall-clock waits.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// After returns a channel that delivers the current time once the
	// given duration has elapsed.
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
