package trigger

import (
	"fmt"
)

// State is the state of a Trigger. It is either idle (the zero value) or active with a value and an identity.
type State[Value comparable] struct {
	// value is the value that was passed along with the trigger.
	value Value

	// identity is the identity of the triggering event (NoIdentity if idle).
	identity Identity
}

// Idle returns the idle State.
func Idle[Value comparable]() State[Value] {
	return State[Value]{}
}

// Active returns an active State with the given value and identity. A fresh identity is generated if NoIdentity is
// passed in.
func Active[Value comparable](value Value, identity Identity) State[Value] {
	if identity == NoIdentity {
		identity = RandomIdentities()()
	}

	return State[Value]{
		value:    value,
		identity: identity,
	}
}

// IsActive returns true if the State carries a pending triggering event.
func (s State[Value]) IsActive() bool {
	return s.identity != NoIdentity
}

// Value returns the value of the State (the zero value if idle).
func (s State[Value]) Value() Value {
	return s.value
}

// Identity returns the identity of the State (NoIdentity if idle).
func (s State[Value]) Identity() Identity {
	return s.identity
}

// String returns a human-readable version of the State.
func (s State[Value]) String() string {
	if !s.IsActive() {
		return "Idle"
	}

	return fmt.Sprintf("Active(value=%v, identity=%s)", s.value, s.identity)
}
