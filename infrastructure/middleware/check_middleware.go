// Package middleware provides cross-cutting concerns for the verification
// engine. The engine core records nothing itself; callers who want
// observability or pacing compose these wrappers around their checks
// before handing them to an engine.
package middleware

import (
	"github.com/ahrav/go-overtime/internal/ports"
)

// CheckMiddleware wraps a check with additional behavior while preserving
// the ports.Check contract.
type CheckMiddleware func(ports.Check) ports.Check

// Chain applies middlewares to a check in reverse order, so the first
// middleware listed is the outermost wrapper.
func Chain(check ports.Check, middlewares ...CheckMiddleware) ports.Check {
	for i := len(middlewares) - 1; i >= 0; i-- {
		check = middlewares[i](check)
	}
	return check
}

// recoverableOnFailure forwards the recoverability classification of the
// wrapped check. Middleware must never mask a permanent-failure tag: an
// engine polling a wrapped check has to classify failures exactly as it
// would classify the bare check's.
func recoverableOnFailure(next ports.Check) bool {
	if aware, ok := next.(ports.RecoveryAware); ok {
		return aware.RecoverableOnFailure()
	}
	return true
}
