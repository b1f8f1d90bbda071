// Package logger builds the zap logger and the structured fields shared across
// the pipeline and the interview.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Entries go to stderr unless outputs
// names other sinks, so they never mix with the interview on stdout.
func New(json bool, debug bool, outputs ...string) (*zap.Logger, error) {
	return buildConfig(json, debug, outputs).Build()
}

func buildConfig(json, debug bool, outputs []string) zap.Config {
	encoding, level := "console", zapcore.InfoLevel
	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	return zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "step",
			LevelKey:     "level",
			TimeKey:      "time",
			CallerKey:    "caller",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			EncodeTime:   zapcore.RFC3339TimeEncoder,
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
}
