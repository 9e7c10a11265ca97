// Package binding translates the state transitions of a trigger.Store into exactly one running operation.
//
// Whenever the store settles on a new identity, the binding cancels the operation of the previous identity, waits for
// it to return and starts a new one with the new value. Re-observing the same identity leaves the running operation
// untouched. An operation that returns without being cancelled resets the trigger to idle, but only if its identity
// is still the current one. All operations run within a scope.Scope and are cancelled before its teardown completes.
package binding

import (
	"context"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/options"
	"github.com/iotaledger/tasktrigger/scope"
	"github.com/iotaledger/tasktrigger/trigger"
)

// Operation is the asynchronous work that is started for every distinct triggering event. It must honor the
// cancellation of its context and return promptly once it is done.
type Operation[Value any] func(ctx context.Context, value Value)

// Store is the read/write handle of the trigger that a Binding observes.
type Store[Value comparable] interface {
	// State returns the current state of the trigger.
	State() trigger.State[Value]

	// OnUpdate registers a callback that is triggered whenever the state of the trigger changes.
	OnUpdate(callback func(prevState, newState trigger.State[Value])) (unsubscribe func())

	// ResetIfCurrent resets the trigger to idle if it is still active with the given identity.
	ResetIfCurrent(identity trigger.Identity) (reset bool)
}

// Binding runs the Operation of a trigger within a scope.Scope.
type Binding[Value comparable] struct {
	scope     *scope.Scope
	store     Store[Value]
	operation Operation[Value]

	// dirty signals the reconcile loop that the store changed (it coalesces notifications).
	dirty chan struct{}

	// loop is the scope task that reconciles the store with the running operation.
	loop *scope.Task

	// current is the run of the current identity (only accessed by the reconcile loop).
	current *run

	unsubscribe     func()
	unsubscribeOnce sync.Once

	running   atomic.Bool
	started   atomic.Uint64
	cancelled atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64

	optsName   string
	optsLogger *zap.Logger
}

// New binds the given Operation to the trigger held by the Store and starts observing it within the given Scope.
func New[Value comparable](sc *scope.Scope, store Store[Value], operation Operation[Value], opts ...options.Option[Binding[Value]]) (*Binding[Value], error) {
	b := options.Apply(&Binding[Value]{
		scope:      sc,
		store:      store,
		operation:  operation,
		dirty:      make(chan struct{}, 1),
		optsName:   "binding",
		optsLogger: zap.NewNop(),
	}, opts, func(b *Binding[Value]) {
		b.optsLogger = b.optsLogger.With(zap.String("binding", b.optsName))
	})

	b.unsubscribe = store.OnUpdate(func(_, _ trigger.State[Value]) {
		b.markDirty()
	})
	b.markDirty()

	loop, err := sc.Go(b.optsName+".reconcile", b.reconcileLoop)
	if err != nil {
		b.unsubscribeFromStore()

		return nil, ierrors.Wrapf(err, "failed to bind %s", b.optsName)
	}
	b.loop = loop

	return b, nil
}

// NewPlain binds an Operation that does not need a value to a trigger.PlainStore.
func NewPlain(sc *scope.Scope, store *trigger.PlainStore, operation func(ctx context.Context), opts ...options.Option[Binding[bool]]) (*Binding[bool], error) {
	return New[bool](sc, store, func(ctx context.Context, _ bool) { operation(ctx) }, opts...)
}

// IsRunning returns true if an operation is currently running.
func (b *Binding[Value]) IsRunning() bool {
	return b.running.Load()
}

// Stats returns the counters of the Binding.
func (b *Binding[Value]) Stats() Stats {
	return Stats{
		Started:   b.started.Load(),
		Cancelled: b.cancelled.Load(),
		Completed: b.completed.Load(),
		Panicked:  b.panicked.Load(),
	}
}

// Close detaches the Binding from its trigger without tearing down the Scope. It cancels the running operation and
// waits for it to return. It must not be called from within the Operation.
func (b *Binding[Value]) Close() {
	b.loop.Cancel()
	b.loop.Wait()
}

// markDirty notifies the reconcile loop about a change without blocking the writer of the store.
func (b *Binding[Value]) markDirty() {
	select {
	case b.dirty <- struct{}{}:
	default:
	}
}

// reconcileLoop reacts to the settled states of the store until the loop is cancelled.
func (b *Binding[Value]) reconcileLoop(ctx context.Context) {
	defer b.unsubscribeFromStore()
	defer b.stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.dirty:
			b.reconcile(ctx)
		}
	}
}

// reconcile compares the current state of the store with the running operation and cancels or starts operations
// accordingly.
func (b *Binding[Value]) reconcile(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	state := b.store.State()
	if b.current != nil {
		if b.current.isRunningFor(state.Identity()) {
			return
		}

		b.stop()

		// the store may have moved on while we were waiting for the previous operation to return
		state = b.store.State()
	}

	if state.IsActive() && ctx.Err() == nil {
		b.start(state)
	}
}

// start runs the Operation for the given (active) state.
func (b *Binding[Value]) start(state trigger.State[Value]) {
	r := &run{identity: state.Identity()}
	value := state.Value()

	b.started.Inc()
	b.running.Store(true)
	task, err := b.scope.Go(b.optsName+"."+r.identity.String(), func(ctx context.Context) {
		b.execute(ctx, r, value)
	})
	if err != nil {
		b.running.Store(false)
		b.started.Dec()

		if ierrors.Is(err, scope.ErrTornDown) {
			return
		}

		b.optsLogger.Error("failed to start operation", zap.Stringer("identity", r.identity), zap.Error(err))
		b.store.ResetIfCurrent(r.identity)

		return
	}

	r.task = task
	b.current = r

	b.optsLogger.Debug("operation started", zap.Stringer("identity", r.identity))
}

// execute runs the Operation and resets the trigger if the Operation returned without being cancelled or if it
// panicked.
func (b *Binding[Value]) execute(ctx context.Context, r *run, value Value) {
	defer b.running.Store(false)
	defer b.abortOnPanic(r)

	b.operation(ctx, value)
	r.returned.Store(true)

	if ctx.Err() != nil {
		b.cancelled.Inc()
		b.optsLogger.Debug("operation cancelled", zap.Stringer("identity", r.identity))

		return
	}

	b.completed.Inc()

	if !b.store.ResetIfCurrent(r.identity) {
		b.optsLogger.Debug("operation completed for a superseded identity", zap.Stringer("identity", r.identity))

		return
	}

	b.optsLogger.Debug("operation completed", zap.Stringer("identity", r.identity))
}

// abortOnPanic releases the trigger of a run whose Operation panicked. The panic itself is not recovered.
func (b *Binding[Value]) abortOnPanic(r *run) {
	if r.returned.Load() {
		return
	}
	r.returned.Store(true)

	b.panicked.Inc()
	b.store.ResetIfCurrent(r.identity)
}

// stop cancels the running operation and waits for it to return. An operation that already returned is not cancelled
// anymore, so that it can still reset the trigger.
func (b *Binding[Value]) stop() {
	if b.current == nil {
		return
	}

	if !b.current.returned.Load() {
		b.current.task.Cancel()
	}
	b.current.task.Wait()
	b.current = nil
}

// unsubscribeFromStore stops observing the store.
func (b *Binding[Value]) unsubscribeFromStore() {
	b.unsubscribeOnce.Do(b.unsubscribe)
}

// WithName sets the name of the Binding that is used for its tasks and log messages.
func WithName[Value comparable](name string) options.Option[Binding[Value]] {
	return func(b *Binding[Value]) {
		b.optsName = name
	}
}

// WithLogger sets the logger of the Binding.
func WithLogger[Value comparable](logger *zap.Logger) options.Option[Binding[Value]] {
	return func(b *Binding[Value]) {
		b.optsLogger = logger
	}
}
