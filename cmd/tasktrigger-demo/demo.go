package main

import (
	"context"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/binding"
	"github.com/iotaledger/tasktrigger/button"
	"github.com/iotaledger/tasktrigger/config"
	"github.com/iotaledger/tasktrigger/scope"
)

// idlePollInterval is the interval in which the demo checks whether the button returned to idle.
const idlePollInterval = 5 * time.Millisecond

// report summarizes a demo run.
type report struct {
	Result int64
	Stats  binding.Stats
}

type demoDeps struct {
	dig.In

	Config *config.Config
	Logger *zap.Logger
	Scope  *scope.Scope
	Button *button.Button
	Result *result
}

// run builds the container and simulates the configured taps.
func run(ctx context.Context, args []string) (*report, error) {
	container, err := newContainer(ctx, args)
	if err != nil {
		return nil, err
	}

	var r *report
	if err := container.Invoke(func(deps demoDeps) (err error) {
		r, err = simulate(deps)

		return err
	}); err != nil {
		return nil, dig.RootCause(err)
	}

	return r, nil
}

// simulate taps the button, waits for it to become idle and tears the scope down before reporting.
func simulate(deps demoDeps) (*report, error) {
	defer func() { _ = deps.Logger.Sync() }()
	defer deps.Scope.Teardown()

	ctx := deps.Scope.Context()

	deps.Logger.Info("starting demo",
		zap.Stringer("behavior", deps.Button.Behavior()),
		zap.Int("taps", deps.Config.Taps.Count),
		zap.Duration("operationDuration", deps.Config.Operation.Duration),
	)

	for i := 0; i < deps.Config.Taps.Count; i++ {
		if i > 0 && !sleep(ctx, deps.Config.Taps.Interval) {
			return nil, ierrors.Wrap(ctx.Err(), "demo interrupted")
		}

		deps.Button.Tap()
		deps.Logger.Info("tapped", zap.Int("tap", i+1), zap.String("label", deps.Button.Label()), zap.Bool("active", deps.Button.IsActive()))
	}

	for deps.Button.IsActive() || deps.Button.Binding().IsRunning() {
		if !sleep(ctx, idlePollInterval) {
			return nil, ierrors.Wrap(ctx.Err(), "demo interrupted")
		}
	}

	// tasks that are still being reconciled are cancelled and accounted for
	deps.Scope.Teardown()

	r := &report{
		Result: deps.Result.Load(),
		Stats:  deps.Button.Binding().Stats(),
	}

	deps.Logger.Info("demo finished",
		zap.Int64("result", r.Result),
		zap.Uint64("started", r.Stats.Started),
		zap.Uint64("cancelled", r.Stats.Cancelled),
		zap.Uint64("completed", r.Stats.Completed),
	)

	return r, nil
}

// sleep waits for the given duration and returns false if the context was cancelled earlier.
func sleep(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
