package middleware

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/ports"
)

var (
	_ ports.Check         = (*rateLimitedCheck)(nil)
	_ ports.RecoveryAware = (*rateLimitedCheck)(nil)
)

// rateLimitedCheck paces polls using a token bucket. Several engines
// verifying against the same hot data source can share one middleware
// instance to cap their combined poll rate.
type rateLimitedCheck struct {
	next    ports.Check
	limiter *rate.Limiter
}

// RateLimitCheckMiddleware creates middleware that enforces a poll rate
// using a token bucket algorithm. The limit parameter sets polls per
// second, while burst allows temporary spikes above the sustained rate.
func RateLimitCheckMiddleware(limit rate.Limit, burst int) CheckMiddleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next ports.Check) ports.Check {
		return &rateLimitedCheck{
			next:    next,
			limiter: limiter,
		}
	}
}

// Name returns the wrapped check's name.
func (r *rateLimitedCheck) Name() string { return r.next.Name() }

// Verify waits for rate limit permission before forwarding the poll.
// This blocks the polling goroutine until a token is available.
func (r *rateLimitedCheck) Verify(ctx context.Context, data *domain.Data) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return r.next.Verify(ctx, data)
}

// RecoverableOnFailure forwards the wrapped check's classification.
func (r *rateLimitedCheck) RecoverableOnFailure() bool { return recoverableOnFailure(r.next) }
