//go:build deadlock

// Package syncutils provides the mutex types used throughout the module. Building with the "deadlock" tag swaps
// them for the deadlock detecting implementations of github.com/sasha-s/go-deadlock.
package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

type Mutex = deadlock.Mutex
type RWMutex = deadlock.RWMutex

// DeadlockTimeout is the time after which a pending lock is reported as a potential deadlock.
const DeadlockTimeout = 20 * time.Second

func init() {
	deadlock.Opts.DeadlockTimeout = DeadlockTimeout
}
