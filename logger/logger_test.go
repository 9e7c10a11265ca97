package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
)

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:         "info",
				Encoding:      "console",
				DisableCaller: true,
			},
			expectRx: `\tINFO\tinfo\n.*\tWARN\twarn\n$`,
		},
		{
			name: "json",
			cfg: Config{
				Level:         "warn",
				Encoding:      "json",
				DisableCaller: true,
				TimeEncoder:   "millis",
			},
			expectRx: `^{"level":"WARN","ts":\d+(\.\d+)?,"msg":"warn"}\n$`,
		},
		{
			name: "debug",
			cfg: Config{
				Level:         "debug",
				DisableCaller: true,
			},
			expectRx: `\tDEBUG\tdebug\n.*\tINFO\tinfo\n.*\tWARN\twarn\n$`,
		},
		{
			name: "caller",
			cfg: Config{
				Level:    "warn",
				Encoding: "console",
			},
			expectRx: `\tWARN\tlogger/logger_test.go:\d+\twarn\n$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), "output.log")

			cfg := tt.cfg
			cfg.OutputPaths = []string{outputPath}

			logger, err := NewRootLogger(cfg)
			require.NoError(t, err)

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			_ = logger.Sync()

			content, err := os.ReadFile(outputPath)
			require.NoError(t, err)
			require.Regexp(t, tt.expectRx, string(content))
		})
	}
}

func TestNewRootLogger_InvalidConfig(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "verbose"})
	require.True(t, ierrors.Is(err, ErrInvalidLevel))

	_, err = NewRootLogger(Config{StacktraceLevel: "sometimes"})
	require.True(t, ierrors.Is(err, ErrInvalidLevel))

	_, err = NewRootLogger(Config{Encoding: "xml"})
	require.True(t, ierrors.Is(err, ErrInvalidEncoding))

	_, err = NewRootLogger(Config{TimeEncoder: "sundial"})
	require.True(t, ierrors.Is(err, ErrInvalidTimeEncoding))
}

func TestNewRootLogger_Defaults(t *testing.T) {
	zapCfg, buildOptions, err := buildZapConfig(Config{})
	require.NoError(t, err)

	require.Equal(t, "info", zapCfg.Level.String())
	require.Equal(t, "console", zapCfg.Encoding)
	require.Equal(t, []string{"stdout"}, zapCfg.OutputPaths)
	require.Len(t, buildOptions, 1)

	require.False(t, zapCfg.DisableCaller, "boolean settings of a zero Config are not replaced by their defaults")

	zapCfg, _, err = buildZapConfig(DefaultConfig())
	require.NoError(t, err)
	require.True(t, zapCfg.DisableCaller)

	_, buildOptions, err = buildZapConfig(Config{DisableStacktrace: true})
	require.NoError(t, err)
	require.Empty(t, buildOptions)
}
