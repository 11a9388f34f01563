// Package log holds the process wide zap logger.
package log

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _globalL atomic.Value

func init() {
	_globalL.Store(zap.NewNop())
}

// Init replaces the global logger with a console logger at level.
func Init(level string) error {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	lg, err := cfg.Build()
	if err != nil {
		return err
	}
	ReplaceGlobals(lg)
	return nil
}

// ReplaceGlobals swaps the global logger, mostly for tests.
func ReplaceGlobals(lg *zap.Logger) {
	_globalL.Store(lg)
}

// L returns the global logger.
func L() *zap.Logger {
	return _globalL.Load().(*zap.Logger)
}

func Debug(msg string, fields ...zap.Field) {
	L().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// Sync flushes buffered entries.
func Sync() error {
	return L().Sync()
}
