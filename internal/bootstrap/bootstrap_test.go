package bootstrap_test

import (
	"context"
	"testing"

	"go-hris-registry/internal/bootstrap"
	"go-hris-registry/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Run("level from config", func(t *testing.T) {
		logger, err := bootstrap.NewLogger(config.AppConfig{Name: "registry", Env: "production"}, config.LoggerConfig{Level: "WARN"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger, err := bootstrap.NewLogger(config.AppConfig{Name: "registry", Env: "development"}, config.LoggerConfig{Level: "chatty"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "interrupt"},
	})

	entries := logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "audit"
	}).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audit event", entries[0].Message)
	assert.Equal(t, "SERVER_SHUTDOWN", entries[0].ContextMap()["action"])
}
