// Package logger builds the named console loggers used across the service.
package logger

import (
	"io"

	"github.com/beka-birhanu/vinom-maze/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger named name that writes colored console output to w.
// The name is wrapped in color, e.g. config.ColorCyan.
func New(name, color string, w io.Writer, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.EncodeName = func(n string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(color + "[" + n + "]" + config.ColorReset)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core).Named(name)
}

// ParseLevel converts a level name such as "debug" or "warn" to a zapcore.Level,
// falling back to info.
func ParseLevel(text string) zapcore.Level {
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
