package logger_test

import (
	"testing"

	"github.com/DarKSanjan/HRDaddy/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	dev, err := logger.New("development")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := logger.New("production")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.Named("employee.handler", zap.New(core))
	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "employee.handler", logs.All()[0].LoggerName)

	assert.NotNil(t, logger.Named("fallback"))
	assert.NotNil(t, logger.Named("fallback", nil))
}
