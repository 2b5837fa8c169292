// Package engine implements the timed verification polling engine: it
// repeatedly re-evaluates a delegate check against evolving observed state
// until the check succeeds or a deadline elapses, then deterministically
// decides success or failure.
//
// Two termination policies are supported. With return-on-success, Verify
// returns as soon as the delegate is satisfied. Without it, Verify keeps
// re-confirming the delegate until the full duration has elapsed, and only
// succeeds if no failure was left standing at expiry.
//
// Basic usage:
//
//	v, err := engine.Timeout(10*time.Millisecond, time.Second, check)
//	if err != nil {
//	    return err
//	}
//	if err := v.Verify(ctx, data); err != nil {
//	    // err is exactly the failure produced by the final poll.
//	}
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/ports"
)

// validate is shared across constructors; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// Config defines the timing parameters for a timed verification.
// All fields are validated during engine construction.
type Config struct {
	// PollingPeriod is the wait interval between unsuccessful, recoverable
	// retries of the delegate check.
	PollingPeriod time.Duration `validate:"required,gt=0"`

	// Duration is the total time budget for the polling loop, measured
	// from the call to Verify.
	Duration time.Duration `validate:"required,gt=0"`

	// ReturnOnSuccess selects the termination policy: true returns
	// immediately once the delegate is satisfied, false keeps polling and
	// requires the delegate to hold until the full duration has elapsed.
	ReturnOnSuccess bool
}

// OverTime verifies that a delegate check is satisfied within a certain
// timeframe, and either returns immediately once it is, or waits until it
// is definitely satisfied once the full time has passed.
//
// Verify executes synchronously on the calling goroutine; the only
// suspension point is the wait between failed, recoverable polls.
// An OverTime instance carries call-scoped timer state, so concurrent
// Verify calls on the same instance are not supported: serialize them or
// construct independent instances per concurrent verification.
type OverTime struct {
	pollingPeriod   time.Duration
	check           ports.Check
	returnOnSuccess bool
	timer           *Timer
	clock           ports.Clock
}

// NewOverTime creates a verification engine from the given configuration
// and delegate check. It returns an error if the configuration is invalid
// or the check is nil.
func NewOverTime(cfg Config, check ports.Check) (*OverTime, error) {
	return NewOverTimeWithClock(cfg, check, ports.SystemClock)
}

// NewOverTimeWithClock creates a verification engine reading time from the
// provided clock. Injecting a clock keeps engine tests free of real
// wall-clock waits.
func NewOverTimeWithClock(cfg Config, check ports.Check, clock ports.Clock) (*OverTime, error) {
	if check == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, domain.ErrNilCheck)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}

	return &OverTime{
		pollingPeriod:   cfg.PollingPeriod,
		check:           check,
		returnOnSuccess: cfg.ReturnOnSuccess,
		timer:           NewTimerWithClock(cfg.Duration, clock),
		clock:           clock,
	}, nil
}

// Verify polls the delegate check against the recorded interactions until
// it is satisfied or the time budget is spent.
//
// On each poll a success either returns immediately (return-on-success) or
// clears the last observed failure and keeps polling. A failure is
// classified: non-recoverable failures surface at once without waiting for
// the remaining duration, recoverable ones are recorded and retried after
// one polling period. When the timer expires, the most recent failure
// still standing is returned unchanged; if the last poll succeeded and no
// failure followed it, Verify returns nil.
//
// Cancellation of ctx during the wait between polls is fatal: it is never
// treated as a check failure and terminates Verify with an error wrapping
// ctx.Err().
func (v *OverTime) Verify(ctx context.Context, data *domain.Data) error {
	var lastErr error

	v.timer.Start()
	for v.timer.IsCounting() {
		err := v.check.Verify(ctx, data)
		if err == nil {
			if v.returnOnSuccess {
				return nil
			}
			lastErr = nil
			continue
		}

		if !CanRecoverFromFailure(v.check) {
			return err
		}

		lastErr = err
		if waitErr := v.waitPollingPeriod(ctx); waitErr != nil {
			return waitErr
		}
	}

	return lastErr
}

// waitPollingPeriod blocks for exactly one polling period. The wait is
// unconditional after a recoverable failure, even when the deadline lands
// inside it; the next loop iteration observes expiry and exits without a
// further poll.
func (v *OverTime) waitPollingPeriod(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait between polls interrupted: %w", ctx.Err())
	case <-v.clock.After(v.pollingPeriod):
		return nil
	}
}

// CopyWithCheck returns a new engine sharing this engine's polling period,
// configured duration, and termination policy, with check replacing the
// current delegate. The receiver is not mutated; the copy gets a fresh
// idle timer.
func (v *OverTime) CopyWithCheck(check ports.Check) *OverTime {
	return &OverTime{
		pollingPeriod:   v.pollingPeriod,
		check:           check,
		returnOnSuccess: v.returnOnSuccess,
		timer:           NewTimerWithClock(v.timer.Duration(), v.clock),
		clock:           v.clock,
	}
}

// PollingPeriod returns the wait interval between recoverable retries.
func (v *OverTime) PollingPeriod() time.Duration { return v.pollingPeriod }

// ReturnOnSuccess reports whether the engine returns immediately once the
// delegate is satisfied.
func (v *OverTime) ReturnOnSuccess() bool { return v.returnOnSuccess }

// Check returns the delegate check being polled.
func (v *OverTime) Check() ports.Check { return v.check }

// Timer returns the engine's deadline timer.
func (v *OverTime) Timer() *Timer { return v.timer }
