// Package trigger contains the intent object that drives a scoped asynchronous task: a Trigger is either idle or
// active with a value and an identity. It knows nothing about tasks or hosts, all transitions are synchronous and
// always succeed.
package trigger

import (
	"github.com/iotaledger/tasktrigger/options"
)

// Trigger is a value holder that represents "no pending work" or "pending work with a value and an identity". It has
// value semantics: copies are independent snapshots, and only the instance kept by the owner (see Store) matters.
type Trigger[Value comparable] struct {
	state State[Value]
}

// New creates a new idle Trigger.
func New[Value comparable]() Trigger[Value] {
	return Trigger[Value]{}
}

// State returns the current state of the Trigger.
func (t Trigger[Value]) State() State[Value] {
	return t.state
}

// IsActive returns true if the Trigger is active.
func (t Trigger[Value]) IsActive() bool {
	return t.state.IsActive()
}

// Trigger activates the Trigger with the given value, superseding a previously active state. Unless an explicit
// identity is passed in, a fresh identity is created on every call, so that triggering twice with the same value is
// treated as two independent events.
func (t *Trigger[Value]) Trigger(value Value, opts ...Option) {
	t.state = State[Value]{
		value:    value,
		identity: options.Apply(new(settings), opts).resolveIdentity(),
	}
}

// Cancel resets the Trigger to idle (it is a no-op if the Trigger is already idle).
func (t *Trigger[Value]) Cancel() {
	t.state = State[Value]{}
}

// Plain is a Trigger that does not carry a meaningful value.
type Plain = Trigger[bool]

// Fire activates the Plain trigger with a fresh identity.
func Fire(t *Plain, opts ...Option) {
	t.Trigger(true, opts...)
}
