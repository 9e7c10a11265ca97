// Package scope provides the lifetime of a host that owns asynchronous work. Work is started through Go and runs on
// a goroutine pool under a context that is cancelled when the work is cancelled or the Scope is torn down. Teardown
// only returns after all work of the Scope has returned.
package scope

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/options"
	"github.com/iotaledger/tasktrigger/syncutils"
)

// Scope is the lifetime of a host. It is torn down exactly once.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	pool   *ants.Pool

	tasks     sync.WaitGroup
	taskCount atomic.Int64
	tornDown  atomic.Bool

	teardownHooks   *linkedhashmap.Map
	teardownHookID  uint64
	hooksDrained    bool
	teardownOnce    sync.Once
	mutex           syncutils.RWMutex
	teardownHookMtx syncutils.Mutex

	optsParentCtx context.Context
	optsPoolSize  int
	optsLogger    *zap.Logger
}

// New creates a new Scope.
func New(opts ...options.Option[Scope]) (*Scope, error) {
	s := options.Apply(&Scope{
		teardownHooks: linkedhashmap.New(),
		optsParentCtx: context.Background(),
		optsPoolSize:  ants.DefaultAntsPoolSize,
		optsLogger:    zap.NewNop(),
	}, opts)

	pool, err := ants.NewPool(s.optsPoolSize, ants.WithNonblocking(true), ants.WithPanicHandler(s.handlePanic))
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to create worker pool")
	}

	s.pool = pool
	s.ctx, s.cancel = context.WithCancel(s.optsParentCtx)

	return s, nil
}

// Context returns the context of the Scope that is done once the Scope is torn down.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go runs the given work function within the Scope. The context passed to the work function is cancelled when the
// returned Task is cancelled or the Scope is torn down.
func (s *Scope) Go(name string, workFunc func(ctx context.Context)) (*Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.tornDown.Load() || s.ctx.Err() != nil {
		return nil, ierrors.Wrapf(ErrTornDown, "failed to start task %s", name)
	}

	task := newTask(s.ctx, name)

	s.tasks.Add(1)
	s.taskCount.Inc()

	if err := s.pool.Submit(func() {
		defer s.taskDone()

		task.run(workFunc)
	}); err != nil {
		s.taskDone()
		task.cancel()
		close(task.done)

		if ierrors.Is(err, ants.ErrPoolOverload) {
			return nil, ierrors.Wrapf(ErrPoolOverload, "failed to start task %s", name)
		}

		return nil, ierrors.Wrapf(err, "failed to start task %s", name)
	}

	return task, nil
}

// OnTeardown registers a hook that is executed when the Scope is torn down (before waiting for the running tasks). A
// hook that is registered after the hooks were executed runs right away.
func (s *Scope) OnTeardown(hook func()) (unsubscribe func()) {
	s.teardownHookMtx.Lock()
	if s.hooksDrained {
		s.teardownHookMtx.Unlock()
		hook()

		return func() {}
	}
	defer s.teardownHookMtx.Unlock()

	s.teardownHookID++
	hookID := s.teardownHookID
	s.teardownHooks.Put(hookID, hook)

	return func() {
		s.teardownHookMtx.Lock()
		defer s.teardownHookMtx.Unlock()

		s.teardownHooks.Remove(hookID)
	}
}

// TaskCount returns the number of tasks that are currently running within the Scope.
func (s *Scope) TaskCount() int {
	return int(s.taskCount.Load())
}

// IsTornDown returns true if the Scope was torn down.
func (s *Scope) IsTornDown() bool {
	return s.tornDown.Load()
}

// Teardown cancels all tasks of the Scope, runs the teardown hooks and waits until all tasks have returned. It must
// not be called from within a task of the same Scope.
func (s *Scope) Teardown() {
	s.teardownOnce.Do(func() {
		s.mutex.Lock()
		s.tornDown.Store(true)
		s.mutex.Unlock()

		s.cancel()

		for _, hook := range s.drainTeardownHooks() {
			hook()
		}

		s.tasks.Wait()
		s.pool.Release()

		s.optsLogger.Debug("scope torn down")
	})
}

// drainTeardownHooks removes and returns the registered teardown hooks in registration order.
func (s *Scope) drainTeardownHooks() []func() {
	s.teardownHookMtx.Lock()
	defer s.teardownHookMtx.Unlock()

	hooks := make([]func(), 0, s.teardownHooks.Size())
	for _, hook := range s.teardownHooks.Values() {
		//nolint:forcetypeassert // only hooks are stored in the map
		hooks = append(hooks, hook.(func()))
	}
	s.teardownHooks.Clear()
	s.hooksDrained = true

	return hooks
}

// taskDone marks a task of the Scope as finished.
func (s *Scope) taskDone() {
	s.taskCount.Dec()
	s.tasks.Done()
}

// handlePanic logs panics of work functions (the pool recovers them so the worker can be reused).
func (s *Scope) handlePanic(recovered interface{}) {
	s.optsLogger.Error("task panicked", zap.Any("panic", recovered), zap.Stack("stack"))
}

// WithContext sets the parent context of the Scope. Once the parent context is done, the tasks are cancelled and Go
// returns ErrTornDown, but Teardown still needs to be called to run the hooks and release the resources.
func WithContext(ctx context.Context) options.Option[Scope] {
	return func(s *Scope) {
		s.optsParentCtx = ctx
	}
}

// WithPoolSize sets the maximum number of tasks that can run concurrently within the Scope.
func WithPoolSize(poolSize int) options.Option[Scope] {
	return func(s *Scope) {
		s.optsPoolSize = poolSize
	}
}

// WithLogger sets the logger of the Scope.
func WithLogger(logger *zap.Logger) options.Option[Scope] {
	return func(s *Scope) {
		s.optsLogger = logger
	}
}
