// Package logging provides the structured logger used for diagnostics
// behind the pterm presentation layer.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger = zap.NewNop()

// Initialize sets up the global logger. With verbose set, debug-level
// messages are emitted to stderr; otherwise only warnings and above.
func Initialize(verbose bool) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	Logger = zap.New(core)
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	_ = Logger.Sync()
}
