package logger

import (
	"path/filepath"
	"testing"

	"cyber_academy_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFollowsConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{Level: "warn", File: filepath.Join(t.TempDir(), "app.log")},
	}
	InitLogger(cfg)
	t.Cleanup(func() { Log = zap.NewNop() })

	assert.False(t, Log.Core().Enabled(zap.InfoLevel))
	assert.True(t, Log.Core().Enabled(zap.WarnLevel))

	cfg.Log.Level = "debug"
	ApplyConfig(cfg)
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	cfg.Server.Mode = "debug"
	cfg.Log.Level = "error"
	ApplyConfig(cfg)
	assert.True(t, Log.Core().Enabled(zap.DebugLevel), "debug mode always logs debug")

	cfg.Server.Mode = "release"
	cfg.Log.Level = "nonsense"
	ApplyConfig(cfg)
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
}
