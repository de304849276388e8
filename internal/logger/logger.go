package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: colored console output in development,
// JSON at info level everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	return zap.NewProduction()
}

// Named returns logger[0].Named(name) when a non-nil logger is given,
// otherwise the named global logger.
func Named(name string, logger ...*zap.Logger) *zap.Logger {
	if len(logger) > 0 && logger[0] != nil {
		return logger[0].Named(name)
	}
	return zap.L().Named(name)
}
