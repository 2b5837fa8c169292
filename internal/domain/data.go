// Package domain contains the core types shared by the verification engine
// and the checks it polls: the recorded-interaction container and the error
// values that flow between them.
package domain

import (
	"sync"
	"time"
)

// Interaction records a single observed call on the subject under
// verification. Interactions are immutable once recorded.
type Interaction struct {
	// Method is the name of the operation that was observed.
	Method string

	// Args holds the arguments the operation was observed with.
	Args []any

	// At is the instant the interaction was recorded.
	At time.Time
}

// Data carries the interactions recorded so far for one subject under
// verification. It is the opaque collaborator handed unchanged to the
// delegate check on every poll.
//
// Writers external to the engine (typically the application under test)
// may append concurrently while a verification is polling; the engine
// itself only reads, and makes no attempt to synchronize with writers
// beyond re-polling.
type Data struct {
	mu           sync.RWMutex
	interactions []Interaction
}

// NewData returns an empty interaction container.
func NewData() *Data {
	return &Data{interactions: make([]Interaction, 0)}
}

// Record appends an observed interaction. Safe for concurrent use.
func (d *Data) Record(interaction Interaction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interactions = append(d.interactions, interaction)
}

// Interactions returns a snapshot copy of the interactions recorded so far.
// The copy is stable even if writers keep appending after it is taken.
func (d *Data) Interactions() []Interaction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snapshot := make([]Interaction, len(d.interactions))
	copy(snapshot, d.interactions)
	return snapshot
}

// Len returns the number of interactions recorded so far.
func (d *Data) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.interactions)
}
