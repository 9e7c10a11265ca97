package reactive

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/tasktrigger/syncutils"
)

// variable is the default implementation of the Variable interface.
type variable[Type comparable] struct {
	value Type

	// version is increased with every change of the value.
	version uint64

	// subscriptions maps subscription ids to their *subscription (ordered by registration).
	subscriptions      *linkedhashmap.Map
	lastSubscriptionID uint64

	// writeMutex serializes writes including the delivery of their notifications.
	writeMutex syncutils.Mutex

	// stateMutex guards the value, the version and the subscriptions.
	stateMutex syncutils.RWMutex
}

func newVariable[Type comparable](initialValue ...Type) *variable[Type] {
	return &variable[Type]{
		value:         lo.First(initialValue),
		subscriptions: linkedhashmap.New(),
	}
}

func (v *variable[Type]) Get() Type {
	v.stateMutex.RLock()
	defer v.stateMutex.RUnlock()

	return v.value
}

func (v *variable[Type]) Set(newValue Type) (previousValue Type) {
	return v.Compute(func(Type) Type { return newValue })
}

func (v *variable[Type]) Compute(computeFunc func(currentValue Type) Type) (previousValue Type) {
	v.writeMutex.Lock()
	defer v.writeMutex.Unlock()

	previousValue, newValue, version, subscriptions := v.store(computeFunc)
	for _, s := range subscriptions {
		s.notify(version, previousValue, newValue)
	}

	return previousValue
}

func (v *variable[Type]) OnUpdate(callback func(prevValue, newValue Type)) (unsubscribe func()) {
	v.stateMutex.Lock()

	v.lastSubscriptionID++
	subscriptionID := v.lastSubscriptionID

	s := &subscription[Type]{callback: callback}
	v.subscriptions.Put(subscriptionID, s)

	// the initial invocation needs to happen before any later update reaches the subscription
	s.mutex.Lock()
	s.lastVersion = v.version
	currentValue := v.value

	v.stateMutex.Unlock()

	var zeroValue Type
	if currentValue != zeroValue {
		s.callback(zeroValue, currentValue)
	}
	s.mutex.Unlock()

	return func() {
		v.stateMutex.Lock()
		v.subscriptions.Remove(subscriptionID)
		v.stateMutex.Unlock()

		s.cancelled.Store(true)
	}
}

func (v *variable[Type]) Subscribers() int {
	v.stateMutex.RLock()
	defer v.stateMutex.RUnlock()

	return v.subscriptions.Size()
}

// store applies the computeFunc and returns the subscriptions that need to be notified (none if the value did not
// change).
func (v *variable[Type]) store(computeFunc func(currentValue Type) Type) (previousValue, newValue Type, version uint64, subscriptions []*subscription[Type]) {
	v.stateMutex.Lock()
	defer v.stateMutex.Unlock()

	if previousValue, newValue = v.value, computeFunc(v.value); previousValue == newValue {
		return previousValue, newValue, v.version, nil
	}

	v.value = newValue
	v.version++

	subscriptions = make([]*subscription[Type], 0, v.subscriptions.Size())
	for _, s := range v.subscriptions.Values() {
		//nolint:forcetypeassert // only subscriptions are stored in the map
		subscriptions = append(subscriptions, s.(*subscription[Type]))
	}

	return previousValue, newValue, v.version, subscriptions
}
