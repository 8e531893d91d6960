// Package logging provides structured logging with zap.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	globalLevel  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string // stdout, stderr, or file path
}

// DefaultConfig logs warnings and errors to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "console", OutputPath: "stderr"}
}

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel parses one of Levels. Case is ignored.
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil || level < zapcore.DebugLevel || level > zapcore.ErrorLevel {
		return zapcore.WarnLevel, fmt.Errorf("unknown log level %q, want one of %v", s, Levels)
	}
	return level, nil
}

// Init initializes the global logger. An unknown level falls back to warn and
// is reported through the new logger.
func Init(cfg Config) error {
	level, levelErr := ParseLevel(cfg.Level)

	var config zap.Config
	if cfg.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	globalLevel.SetLevel(level)
	config.Level = globalLevel
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	if cfg.OutputPath != "" {
		config.OutputPaths = []string{cfg.OutputPath}
	}
	config.ErrorOutputPaths = config.OutputPaths

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	Replace(logger)
	if levelErr != nil {
		logger.Warn("falling back to warn", zap.Error(levelErr))
	}
	return nil
}

// InitDefault initializes with DefaultConfig.
func InitDefault() {
	if err := Init(DefaultConfig()); err != nil {
		Replace(zap.NewNop())
	}
}

// Replace swaps the global logger and returns a function restoring the
// previous one.
func Replace(logger *zap.Logger) func() {
	prev := globalLogger.Swap(logger)
	return func() { globalLogger.Store(prev) }
}

// Sync flushes any buffered log entries.
func Sync() error {
	if logger := globalLogger.Load(); logger != nil {
		return logger.Sync()
	}
	return nil
}

// SetLevel changes the global log level at runtime.
func SetLevel(level string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return
	}
	globalLevel.SetLevel(l)
}

// L returns the global logger.
func L() *zap.Logger {
	if logger := globalLogger.Load(); logger != nil {
		return logger
	}
	InitDefault()
	return globalLogger.Load()
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Field helpers for common fields.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}

func Path(val string) zap.Field {
	return zap.String("path", val)
}
