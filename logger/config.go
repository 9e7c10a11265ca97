package logger

import (
	"go.uber.org/zap/zapcore"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `koanf:"level" json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	DisableCaller bool `koanf:"disablecaller" json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `koanf:"disablestacktrace" json:"disableStacktrace"`
	// StacktraceLevel is the level stacktraces are captured and above.
	// The default is "panic".
	StacktraceLevel string `koanf:"stacktracelevel" json:"stacktraceLevel"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `koanf:"encoding" json:"encoding"`
	// TimeEncoder sets the logger's timestamp encoding. Valid values are "nanos", "millis", "iso8601", "rfc3339" and
	// "rfc3339nano". The default is "rfc3339".
	TimeEncoder string `koanf:"timeencoder" json:"timeEncoder"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stdout"].
	OutputPaths []string `koanf:"outputpaths" json:"outputPaths"`
}

// DefaultConfig returns the default logger settings.
func DefaultConfig() Config {
	return Config{
		Level:           "info",
		DisableCaller:   true,
		StacktraceLevel: "panic",
		Encoding:        "console",
		TimeEncoder:     "rfc3339",
		OutputPaths:     []string{"stdout"},
	}
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
	EncodeName:     zapcore.FullNameEncoder,
}

var timeEncoders = map[string]zapcore.TimeEncoder{
	"nanos":       zapcore.EpochNanosTimeEncoder,
	"millis":      zapcore.EpochMillisTimeEncoder,
	"iso8601":     zapcore.ISO8601TimeEncoder,
	"rfc3339":     zapcore.RFC3339TimeEncoder,
	"rfc3339nano": zapcore.RFC3339NanoTimeEncoder,
}
