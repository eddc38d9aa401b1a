// Package logging builds the zap logger of the dashboard commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger at level, writing to stderr.
// An unknown level falls back to info. format is "json" or "console".
func New(level, format string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(l)

	if format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	// the dashboard is printed on stdout.
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Sampling = nil

	return config.Build()
}
