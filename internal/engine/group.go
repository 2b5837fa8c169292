package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-overtime/internal/domain"
)

// Verification pairs an engine with the data it verifies.
type Verification struct {
	Engine *OverTime
	Data   *domain.Data
}

// VerifyAll runs each verification concurrently, one goroutine per entry.
// Engines carry call-scoped timer state, so every entry must bring its own
// engine instance; sharing one engine across entries is not supported.
//
// The first failure cancels the inter-poll waits of the remaining
// verifications and is the error returned.
func VerifyAll(ctx context.Context, verifications ...Verification) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range verifications {
		v := v
		g.Go(func() error {
			return v.Engine.Verify(ctx, v.Data)
		})
	}
	return g.Wait()
}
