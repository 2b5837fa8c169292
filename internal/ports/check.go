// Package ports defines the core interfaces that form the contract between
// the verification engine and the checks it polls.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/ahrav/go-overtime/internal/domain"
)

// Check is the delegate predicate the engine polls. Implementations inspect
// the recorded interactions and decide whether the awaited condition holds.
// Checks should be stateless with respect to polling: the engine invokes
// Verify repeatedly against the same data and expects each invocation to
// judge the data as it stands at that instant.
type Check interface {
	// Name returns a short identifier for this check.
	// The name is used by middleware for metric labels and trace attributes.
	Name() string

	// Verify inspects the recorded interactions and returns nil when the
	// check is satisfied, or a descriptive error when it is not.
	// The data is supplied unchanged on every poll and must never be
	// mutated by the check.
	//
	// The context parameter allows middleware wrapping the check to respect
	// cancellation; the check itself is expected to return promptly.
	Verify(ctx context.Context, data *domain.Data) error
}

// RecoveryAware is an optional capability a Check may declare to describe
// whether its failures can resolve with more waiting. Checks that assert an
// upper bound has already been exceeded, or that no further interaction is
// allowed, report false: once such a check fails, no amount of additional
// polling can turn the failure into a success.
//
// Checks that do not implement RecoveryAware are presumed recoverable,
// since the awaited interaction may simply not have happened yet.
type RecoveryAware interface {
	// RecoverableOnFailure reports whether a failure from this check may
	// still succeed on a later poll.
	RecoverableOnFailure() bool
}
