package binding

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/tasktrigger/scope"
	"github.com/iotaledger/tasktrigger/trigger"
)

// run is the operation that is bound to a single identity.
type run struct {
	identity trigger.Identity
	task     *scope.Task

	// returned is set as soon as the operation returned or panicked (before the trigger is reset).
	returned atomic.Bool
}

// isRunningFor returns true if the run belongs to the given identity and its operation has not returned yet.
func (r *run) isRunningFor(identity trigger.Identity) bool {
	return r.identity == identity && !r.returned.Load()
}
