// Package logging provides structured logging configuration using zap with logfmt encoding.
// It supports configurable log levels, encoders and output streams so that the lookup
// CLI can keep stdout free for reports while the server logs to stdout for containers.
package logging

import (
	"os"
	"strings"

	zaplogfmt "github.com/allir/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration options.
type Config struct {
	// Level specifies the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format selects the encoder (logfmt, json, console). Defaults to logfmt.
	Format string `yaml:"format"`
	// Output selects the stream logs are written to (stdout, stderr). Defaults to stdout.
	Output string `yaml:"output"`
}

// New initializes a zap logger configured with the requested encoder and output.
// The logger uses production-grade settings with the specified log level.
func New(cfg Config) (*zap.Logger, error) {
	level := parseLevel(cfg.Level)
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.ConsoleSeparator = " "

	core := zapcore.NewCore(
		newEncoder(cfg.Format, encoderConfig),
		zapcore.Lock(parseOutput(cfg.Output)),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core), nil
}

// newEncoder returns the encoder matching the format name, falling back to logfmt.
func newEncoder(format string, encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	switch strings.ToLower(format) {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return zaplogfmt.NewEncoder(encoderConfig)
	}
}

// parseOutput maps an output name to a file handle. Anything but stderr goes to stdout.
func parseOutput(v string) zapcore.WriteSyncer {
	if strings.EqualFold(v, "stderr") {
		return os.Stderr
	}
	return os.Stdout
}

// parseLevel converts a string level name to a zapcore.Level constant.
// It defaults to info level for empty or unrecognized values.
func parseLevel(v string) zapcore.Level {
	switch strings.ToLower(v) {
	case "debug":
		return zap.DebugLevel
	case "info", "":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
