// Package button implements the tap policy of a button that runs an asynchronous task bound to a trigger. The button
// itself does not render anything: a host asks it for its Label and whether it is Disabled, and forwards taps.
package button

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/binding"
	"github.com/iotaledger/tasktrigger/options"
	"github.com/iotaledger/tasktrigger/scope"
	"github.com/iotaledger/tasktrigger/syncutils"
	"github.com/iotaledger/tasktrigger/trigger"
)

const (
	// LabelText is returned by Label when the button shows its regular label.
	LabelText = "label"
	// PlaceholderText is returned by Label when the button shows its placeholder.
	PlaceholderText = "placeholder"
)

// Button runs an action whenever it is tapped and decides, based on its Behavior, what a tap does while the action is
// still running.
type Button struct {
	behavior Behavior
	store    *trigger.PlainStore
	binding  *binding.Binding[bool]
	tapMutex syncutils.Mutex
}

// New creates a Button whose action runs within the given Scope.
func New(sc *scope.Scope, behavior Behavior, action func(ctx context.Context), opts ...options.Option[binding.Binding[bool]]) (*Button, error) {
	store := trigger.NewStore[bool]()

	b, err := binding.NewPlain(sc, store, action, opts...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to create button")
	}

	return &Button{
		behavior: behavior,
		store:    store,
		binding:  b,
	}, nil
}

// Tap handles a tap on the Button.
func (b *Button) Tap() {
	b.tapMutex.Lock()
	defer b.tapMutex.Unlock()

	if !b.store.IsActive() {
		trigger.FireStore(b.store)

		return
	}

	switch b.behavior.Mode {
	case ModeCancellable:
		b.store.Cancel()
	case ModeRestart:
		trigger.FireStore(b.store)
	case ModeBlocking:
	}
}

// IsActive returns true if the action of the Button is pending or running.
func (b *Button) IsActive() bool {
	return b.store.IsActive()
}

// Disabled returns true if the Button does not accept taps right now.
func (b *Button) Disabled() bool {
	return b.behavior.IsBlocking() && b.IsActive()
}

// ShowsPlaceholder returns true if the Button shows its placeholder instead of its label.
func (b *Button) ShowsPlaceholder() bool {
	return b.behavior.ShowPlaceholder && b.IsActive()
}

// Label returns the text that the Button currently shows.
func (b *Button) Label() string {
	if b.ShowsPlaceholder() {
		return PlaceholderText
	}

	return LabelText
}

// Behavior returns the Behavior of the Button.
func (b *Button) Behavior() Behavior {
	return b.behavior
}

// Store returns the trigger store of the Button.
func (b *Button) Store() *trigger.PlainStore {
	return b.store
}

// Binding returns the binding that runs the action of the Button.
func (b *Button) Binding() *binding.Binding[bool] {
	return b.binding
}
