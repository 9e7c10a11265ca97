package trigger

import (
	"github.com/iotaledger/tasktrigger/reactive"
)

// Store holds the canonical instance of a Trigger in the state store of its owner and informs subscribers about its
// state transitions.
type Store[Value comparable] struct {
	variable reactive.Variable[Trigger[Value]]
}

// NewStore creates a new Store that holds an idle Trigger.
func NewStore[Value comparable]() *Store[Value] {
	return &Store[Value]{
		variable: reactive.NewVariable[Trigger[Value]](),
	}
}

// State returns the current state of the stored Trigger.
func (s *Store[Value]) State() State[Value] {
	return s.variable.Get().State()
}

// IsActive returns true if the stored Trigger is active.
func (s *Store[Value]) IsActive() bool {
	return s.State().IsActive()
}

// Trigger activates the stored Trigger with the given value (see Trigger.Trigger).
func (s *Store[Value]) Trigger(value Value, opts ...Option) {
	s.variable.Compute(func(t Trigger[Value]) Trigger[Value] {
		t.Trigger(value, opts...)

		return t
	})
}

// Cancel resets the stored Trigger to idle.
func (s *Store[Value]) Cancel() {
	s.variable.Compute(func(t Trigger[Value]) Trigger[Value] {
		t.Cancel()

		return t
	})
}

// ResetIfCurrent resets the stored Trigger to idle if it is still active with the given identity. It returns true if
// the Trigger was reset.
func (s *Store[Value]) ResetIfCurrent(identity Identity) (reset bool) {
	if identity == NoIdentity {
		return false
	}

	previous := s.variable.Compute(func(t Trigger[Value]) Trigger[Value] {
		if t.State().Identity() == identity {
			t.Cancel()
		}

		return t
	})

	return previous.State().Identity() == identity
}

// OnUpdate registers a callback that is triggered whenever the state of the stored Trigger changes. Re-triggering with
// an unchanged identity and value is not a change. If the Trigger is active at the time of the subscription, the
// callback is invoked right away.
func (s *Store[Value]) OnUpdate(callback func(prevState, newState State[Value])) (unsubscribe func()) {
	return s.variable.OnUpdate(func(prevTrigger, newTrigger Trigger[Value]) {
		callback(prevTrigger.State(), newTrigger.State())
	})
}

// PlainStore is a Store that holds a Plain trigger.
type PlainStore = Store[bool]

// FireStore activates the Plain trigger held by the given Store with a fresh identity.
func FireStore(s *PlainStore, opts ...Option) {
	s.Trigger(true, opts...)
}
