// Package logger builds the zap root logger of a host from its configuration.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

var (
	// ErrInvalidLevel is returned if the configured log level is unknown.
	ErrInvalidLevel = ierrors.New("invalid log level")
	// ErrInvalidEncoding is returned if the configured encoding is unknown.
	ErrInvalidEncoding = ierrors.New("invalid log encoding")
	// ErrInvalidTimeEncoding is returned if the configured time encoding is unknown.
	ErrInvalidTimeEncoding = ierrors.New("invalid time encoding")
)

// NewRootLogger creates a new root logger from the provided configuration. Empty string and slice settings fall back
// to the values of DefaultConfig, boolean settings are used as they are (a zero Config annotates logs with the caller).
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	zapCfg, buildOptions, err := buildZapConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := zapCfg.Build(buildOptions...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return logger, nil
}

// buildZapConfig translates the Config into a zap.Config and the options that need to be applied when building it.
func buildZapConfig(cfg Config) (*zap.Config, []zap.Option, error) {
	defaults := DefaultConfig()

	level, err := parseLevel(lo.Cond(cfg.Level != "", cfg.Level, defaults.Level))
	if err != nil {
		return nil, nil, err
	}

	stacktraceLevel, err := parseLevel(lo.Cond(cfg.StacktraceLevel != "", cfg.StacktraceLevel, defaults.StacktraceLevel))
	if err != nil {
		return nil, nil, err
	}

	encoding := strings.ToLower(lo.Cond(cfg.Encoding != "", cfg.Encoding, defaults.Encoding))
	if encoding != "console" && encoding != "json" {
		return nil, nil, ierrors.Wrapf(ErrInvalidEncoding, "%q", cfg.Encoding)
	}

	timeEncoder, exists := timeEncoders[strings.ToLower(lo.Cond(cfg.TimeEncoder != "", cfg.TimeEncoder, defaults.TimeEncoder))]
	if !exists {
		return nil, nil, ierrors.Wrapf(ErrInvalidTimeEncoding, "%q", cfg.TimeEncoder)
	}

	encoderConfig := defaultEncoderConfig
	encoderConfig.EncodeTime = timeEncoder

	outputPaths := lo.Cond(len(cfg.OutputPaths) != 0, cfg.OutputPaths, defaults.OutputPaths)

	zapCfg := &zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		DisableCaller:    cfg.DisableCaller,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},

		// the stacktrace level of zap.Config is fixed, ours is added as an option instead
		DisableStacktrace: true,
	}

	var buildOptions []zap.Option
	if !cfg.DisableStacktrace {
		buildOptions = append(buildOptions, zap.AddStacktrace(stacktraceLevel))
	}

	return zapCfg, buildOptions, nil
}

// parseLevel parses the name of a log level.
func parseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, ierrors.Wrapf(ErrInvalidLevel, "%q", name)
	}

	return level, nil
}
