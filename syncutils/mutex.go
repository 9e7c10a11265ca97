//go:build !deadlock

// Package syncutils provides the mutex types used throughout the module. Building with the "deadlock" tag swaps
// them for the deadlock detecting implementations of github.com/sasha-s/go-deadlock.
package syncutils

import (
	"sync"
)

type Mutex = sync.Mutex
type RWMutex = sync.RWMutex
