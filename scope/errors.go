package scope

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrTornDown is returned if work is scheduled on a Scope that was already torn down.
	ErrTornDown = ierrors.New("scope was torn down")
	// ErrPoolOverload is returned if the worker pool of the Scope has no capacity left for a new task.
	ErrPoolOverload = ierrors.New("scope worker pool is overloaded")
)
