package main

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/binding"
	"github.com/iotaledger/tasktrigger/button"
	"github.com/iotaledger/tasktrigger/config"
	"github.com/iotaledger/tasktrigger/logger"
	"github.com/iotaledger/tasktrigger/scope"
)

// result accumulates the values of naturally completed operations.
type result struct {
	atomic.Int64
}

// newContainer provides all components of the demo host.
func newContainer(ctx context.Context, args []string) (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		func() (*config.Config, error) {
			return config.Load(args)
		},
		func(cfg *config.Config) (*zap.Logger, error) {
			return logger.NewRootLogger(cfg.Logger)
		},
		func(cfg *config.Config, log *zap.Logger) (*scope.Scope, error) {
			return scope.New(
				scope.WithContext(ctx),
				scope.WithPoolSize(cfg.Scope.PoolSize),
				scope.WithLogger(log.Named("scope")),
			)
		},
		func() *result {
			return new(result)
		},
		newButton,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, ierrors.Wrap(err, "failed to provide component")
		}
	}

	return container, nil
}

type buttonDeps struct {
	dig.In

	Config *config.Config
	Logger *zap.Logger
	Scope  *scope.Scope
	Result *result
}

// newButton creates the demo button. Its operation waits for the configured duration and adds the configured value to
// the result unless it is cancelled earlier.
func newButton(deps buttonDeps) (*button.Button, error) {
	behavior, err := deps.Config.Button.Behavior()
	if err != nil {
		return nil, err
	}

	log := deps.Logger.Named("operation")
	duration := deps.Config.Operation.Duration
	value := int64(deps.Config.Operation.Value)

	return button.New(deps.Scope, behavior, func(ctx context.Context) {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-timer.C:
			log.Info("operation finished", zap.Int64("total", deps.Result.Add(value)))
		case <-ctx.Done():
			log.Info("operation cancelled")
		}
	}, binding.WithName[bool]("button"), binding.WithLogger[bool](deps.Logger.Named("binding")))
}
