package scope

import (
	"context"

	"go.uber.org/atomic"
)

// Task is the handle of a unit of work that runs within a Scope.
type Task struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// interrupted is set if the context was already done when the work function returned.
	interrupted atomic.Bool
}

// newTask creates a new Task whose context is derived from the given parent.
func newTask(parentCtx context.Context, name string) *Task {
	ctx, cancel := context.WithCancel(parentCtx)

	return &Task{
		name:   name,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Name returns the name of the Task.
func (t *Task) Name() string {
	return t.name
}

// Cancel signals the Task to stop. Cancellation is cooperative: the work function observes it through its context.
func (t *Task) Cancel() {
	t.cancel()
}

// Cancelled returns true if the Task was cancelled (either directly or by tearing down its Scope) before its work
// function returned.
func (t *Task) Cancelled() bool {
	if t.Finished() {
		return t.interrupted.Load()
	}

	return t.ctx.Err() != nil
}

// Done returns a channel that is closed once the work function returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Finished returns true if the work function returned.
func (t *Task) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the work function returned.
func (t *Task) Wait() {
	<-t.done
}

// run executes the work function and marks the Task as done afterwards.
func (t *Task) run(workFunc func(ctx context.Context)) {
	defer t.cancel()
	defer close(t.done)
	defer func() { t.interrupted.Store(t.ctx.Err() != nil) }()

	workFunc(t.ctx)
}
