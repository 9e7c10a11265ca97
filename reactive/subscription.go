package reactive

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/tasktrigger/syncutils"
)

// subscription is a callback registered at a variable.
type subscription[Type comparable] struct {
	callback func(prevValue, newValue Type)

	// lastVersion is the version of the value the callback has seen last (guarded by mutex).
	lastVersion uint64
	mutex       syncutils.Mutex

	cancelled atomic.Bool
}

// notify invokes the callback unless the subscription was cancelled or already saw the given version.
func (s *subscription[Type]) notify(version uint64, prevValue, newValue Type) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cancelled.Load() || version <= s.lastVersion {
		return
	}
	s.lastVersion = version

	s.callback(prevValue, newValue)
}
