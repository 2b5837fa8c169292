package engine

import (
	"time"

	"github.com/ahrav/go-overtime/internal/ports"
)

// timerState tracks where a Timer is in its lifecycle.
type timerState int

const (
	timerIdle timerState = iota
	timerCounting
	timerExpired
)

// Timer tracks elapsed wall-clock time against a target duration and
// answers whether time remains. A Timer carries call-scoped state: one
// verification invocation owns it for the length of the call, and reusing
// an engine across sequential calls restarts the window.
type Timer struct {
	clock     ports.Clock
	duration  time.Duration
	startedAt time.Time
	state     timerState
}

// NewTimer creates an idle timer for the given total duration, reading
// time from the system clock.
func NewTimer(duration time.Duration) *Timer {
	return NewTimerWithClock(duration, ports.SystemClock)
}

// NewTimerWithClock creates an idle timer reading time from the provided
// clock. Injecting a clock keeps timer tests deterministic.
func NewTimerWithClock(duration time.Duration, clock ports.Clock) *Timer {
	return &Timer{
		clock:    clock,
		duration: duration,
	}
}

// Start records the current instant as the beginning of the countdown.
// Calling Start again resets the window, which is how an engine reused
// across independent verification calls gets a fresh time budget.
func (t *Timer) Start() {
	t.startedAt = t.clock.Now()
	t.state = timerCounting
}

// IsCounting reports whether elapsed time since the last Start is still
// strictly less than the configured duration. The transition to expired
// happens exactly once; before Start is called the timer is idle and
// IsCounting is false. Callers must re-evaluate IsCounting on every loop
// iteration since polling spans real wall-clock time.
func (t *Timer) IsCounting() bool {
	if t.state != timerCounting {
		return false
	}
	if t.clock.Now().Sub(t.startedAt) < t.duration {
		return true
	}
	t.state = timerExpired
	return false
}

// Duration returns the configured total duration.
// It is used when cloning engine configuration.
func (t *Timer) Duration() time.Duration { return t.duration }
