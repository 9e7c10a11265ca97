// Package config loads the settings of the tasktrigger demo host from defaults, a config file, environment variables
// and command line flags (in that order of precedence).
package config

import (
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/button"
	"github.com/iotaledger/tasktrigger/logger"
)

// ErrInvalidConfig is returned if a loaded setting is out of range.
var ErrInvalidConfig = ierrors.New("invalid config")

// Config holds all settings of the demo host.
type Config struct {
	Button    ButtonConfig    `koanf:"button"`
	Operation OperationConfig `koanf:"operation"`
	Taps      TapsConfig      `koanf:"taps"`
	Scope     ScopeConfig     `koanf:"scope"`
	Logger    logger.Config   `koanf:"logger"`
}

// ButtonConfig configures the behavior of the demo button.
type ButtonConfig struct {
	// Mode is one of "blocking", "cancellable" or "restart".
	Mode string `koanf:"mode"`
	// Placeholder shows the placeholder label while the task is running.
	Placeholder bool `koanf:"placeholder"`
}

// Behavior returns the button.Behavior described by the config.
func (b ButtonConfig) Behavior() (button.Behavior, error) {
	mode, err := button.ParseMode(b.Mode)
	if err != nil {
		return button.Behavior{}, err
	}

	return button.Behavior{Mode: mode, ShowPlaceholder: b.Placeholder}, nil
}

// OperationConfig configures the simulated async operation.
type OperationConfig struct {
	// Duration is the time the operation takes to complete naturally.
	Duration time.Duration `koanf:"duration"`
	// Value is added to the result counter when the operation completes.
	Value int `koanf:"value"`
}

// TapsConfig configures the simulated taps.
type TapsConfig struct {
	// Count is the number of taps.
	Count int `koanf:"count"`
	// Interval is the pause between two taps.
	Interval time.Duration `koanf:"interval"`
}

// ScopeConfig configures the host scope.
type ScopeConfig struct {
	// PoolSize is the number of goroutines of the scope's worker pool.
	PoolSize int `koanf:"poolsize"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Button: ButtonConfig{
			Mode:        button.DefaultBehavior.Mode.String(),
			Placeholder: button.DefaultBehavior.ShowPlaceholder,
		},
		Operation: OperationConfig{
			Duration: 200 * time.Millisecond,
			Value:    42,
		},
		Taps: TapsConfig{
			Count:    3,
			Interval: 50 * time.Millisecond,
		},
		Scope: ScopeConfig{
			PoolSize: ants.DefaultAntsPoolSize,
		},
		Logger: logger.DefaultConfig(),
	}
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if _, err := c.Button.Behavior(); err != nil {
		return ierrors.Wrap(ErrInvalidConfig, err.Error())
	}

	switch {
	case c.Operation.Duration < 0:
		return ierrors.Wrapf(ErrInvalidConfig, "operation.duration must not be negative: %s", c.Operation.Duration)
	case c.Taps.Count < 0:
		return ierrors.Wrapf(ErrInvalidConfig, "taps.count must not be negative: %d", c.Taps.Count)
	case c.Taps.Interval < 0:
		return ierrors.Wrapf(ErrInvalidConfig, "taps.interval must not be negative: %s", c.Taps.Interval)
	case c.Scope.PoolSize < 2:
		// the reconcile loop of the binding and its operation each occupy a worker
		return ierrors.Wrapf(ErrInvalidConfig, "scope.poolsize must be at least 2: %d", c.Scope.PoolSize)
	}

	return nil
}
