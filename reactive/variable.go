// Package reactive contains an observable Variable that acts as the state store of a host. Every write that changes
// the stored value is propagated synchronously to the registered callbacks, in the order of their registration.
package reactive

// Variable is a value that can be read and written and that informs its subscribers about every change.
type Variable[Type comparable] interface {
	// Get returns the current value.
	Get() Type

	// Set stores the given value and notifies the subscribers if it differs from the current one.
	Set(newValue Type) (previousValue Type)

	// Compute stores the result of computeFunc applied to the current value. Subscribers are notified if the value
	// changed. The computation and the notifications of one write complete before the next write starts.
	Compute(computeFunc func(currentValue Type) Type) (previousValue Type)

	// OnUpdate subscribes the callback to all future changes. If the current value is not the zero value, the callback
	// is invoked right away with the zero value as the previous value. An update that is being delivered concurrently
	// may still reach the callback after unsubscribe returned.
	OnUpdate(callback func(prevValue, newValue Type)) (unsubscribe func())

	// Subscribers returns the number of registered callbacks.
	Subscribers() int
}

// NewVariable creates a new Variable that holds the optional initial value (or the zero value).
func NewVariable[Type comparable](initialValue ...Type) Variable[Type] {
	return newVariable[Type](initialValue...)
}
