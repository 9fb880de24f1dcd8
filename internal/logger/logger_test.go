package logger

import (
	"testing"

	"jobboard-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_ProductionConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "production"},
		Log:    config.LogConfig{Level: "info", Format: "json"},
	}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, Logger)
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))

	Close()
	Logger = zap.NewNop()
}

func TestInit_DevelopmentConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "development"},
		Log:    config.LogConfig{Level: "debug", Format: "console"},
	}

	require.NoError(t, Init(cfg))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	Close()
	Logger = zap.NewNop()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zap.AtomicLevel{
		"debug":         zap.NewAtomicLevelAt(zap.DebugLevel),
		"info":          zap.NewAtomicLevelAt(zap.InfoLevel),
		"warn":          zap.NewAtomicLevelAt(zap.WarnLevel),
		"error":         zap.NewAtomicLevelAt(zap.ErrorLevel),
		"invalid-level": zap.NewAtomicLevelAt(zap.InfoLevel),
	}
	for name, want := range cases {
		t.Run("level_"+name, func(t *testing.T) {
			assert.Equal(t, want.Level(), ParseLevel(name))
		})
	}
}

func TestWith_BeforeInit(t *testing.T) {
	assert.NotNil(t, With(zap.String("k", "v")))
}
