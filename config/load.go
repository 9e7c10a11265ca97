package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// EnvPrefix is the prefix of the environment variables that are merged into the config.
	// TASKTRIGGER_BUTTON_MODE sets the key "button.mode".
	EnvPrefix = "TASKTRIGGER_"

	// FlagConfigFile is the name of the flag that points to the config file.
	FlagConfigFile = "config"
)

// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
var ErrUnknownConfigFormat = ierrors.New("unknown config file format")

// NewFlagSet returns an unsorted flag set containing a flag for every config key, defaulting to DefaultConfig.
func NewFlagSet(name string) *flag.FlagSet {
	defaults := DefaultConfig()

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String(FlagConfigFile, "", "path to a JSON or YAML config file")
	flagSet.String("button.mode", defaults.Button.Mode, "the tap behavior of the button (blocking, cancellable, restart)")
	flagSet.Bool("button.placeholder", defaults.Button.Placeholder, "show the placeholder while the task is running")
	flagSet.Duration("operation.duration", defaults.Operation.Duration, "the time the operation takes to complete")
	flagSet.Int("operation.value", defaults.Operation.Value, "the value that is added to the result on completion")
	flagSet.Int("taps.count", defaults.Taps.Count, "the number of simulated taps")
	flagSet.Duration("taps.interval", defaults.Taps.Interval, "the pause between two simulated taps")
	flagSet.Int("scope.poolsize", defaults.Scope.PoolSize, "the number of workers of the scope")
	flagSet.String("logger.level", defaults.Logger.Level, "the minimum enabled logging level")
	flagSet.String("logger.encoding", defaults.Logger.Encoding, "the log encoding (console, json)")
	flagSet.String("logger.timeencoder", defaults.Logger.TimeEncoder, "the timestamp encoding of log entries")
	flagSet.Bool("logger.disablecaller", defaults.Logger.DisableCaller, "do not annotate logs with the caller")
	flagSet.StringSlice("logger.outputpaths", defaults.Logger.OutputPaths, "where to write the log output to")

	return flagSet
}

// Load parses the given command line arguments and loads the config.
func Load(args []string) (*Config, error) {
	flagSet := NewFlagSet("tasktrigger")
	if err := flagSet.Parse(args); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse flags")
	}

	return LoadFlagSet(flagSet)
}

// LoadFlagSet loads the config from the defaults, the config file named by the FlagConfigFile flag, the environment
// and the flags that were explicitly set in the given (parsed) flag set.
func LoadFlagSet(flagSet *flag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load defaults")
	}

	if filePath, err := flagSet.GetString(FlagConfigFile); err == nil && filePath != "" {
		if err := loadFile(k, filePath); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges a JSON or YAML file into the given koanf instance.
func loadFile(k *koanf.Koanf, filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "failed to load config file %s", filePath)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		parser = &jsonLowerParser{}
	case ".yaml", ".yml":
		parser = &yamlLowerParser{}
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}

	if err := k.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to parse config file %s", filePath)
	}

	return nil
}

// envKey maps TASKTRIGGER_SCOPE_POOLSIZE to scope.poolsize.
func envKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_", ".")
}
