package engine

import "github.com/ahrav/go-overtime/internal/ports"

// CanRecoverFromFailure reports whether a failure from the given check may
// still resolve with more waiting. Checks whose semantics make a failure
// permanent declare themselves through the ports.RecoveryAware capability;
// every other kind of check is presumed transient, since the awaited
// interaction may simply not have happened yet.
//
// Classification is keyed on the capability the check declares, never on
// its concrete type or internal state.
func CanRecoverFromFailure(check ports.Check) bool {
	if aware, ok := check.(ports.RecoveryAware); ok {
		return aware.RecoverableOnFailure()
	}
	return true
}
