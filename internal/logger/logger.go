// Package logger wraps a process-wide zap logger.
package logger

import (
	"jobboard-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op logger until Init is called.
var Logger = zap.NewNop()

// Init builds the logger from the log section of cfg.
func Init(cfg *config.Config) error {
	var zapConfig zap.Config

	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Log.Level))

	if cfg.Log.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	l, err := zapConfig.Build()
	if err != nil {
		return err
	}

	Logger = l
	return nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Close flushes buffered log entries.
func Close() {
	_ = Logger.Sync()
}

// With creates a child logger with additional fields.
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}
