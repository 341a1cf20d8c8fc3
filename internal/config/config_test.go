package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	storage := t.TempDir()
	dir := writeConfig(t, `
server:
  port: "8081"
  mode: debug
database:
  driver: sqlite
  dsn: "file:test.db"
jwt:
  secret: file-secret
storage:
  local_path: `+storage+`
cors:
  allowed_origins: ["https://academy.example"]
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 168*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window())
	assert.Equal(t, []string{"https://academy.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRE_HOURS", "2")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("CYBER_ACADEMY_STORAGE_LOCAL_PATH", t.TempDir())
	t.Setenv("CYBER_ACADEMY_RATE_LIMIT_MAX_REQUESTS", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Mode: "release"},
			Database:  DatabaseConfig{Driver: "mysql"},
			JWT:       JWTConfig{Secret: "0123456789abcdef0123456789abcdef", ExpireTime: time.Hour},
			RateLimit: RateLimitConfig{MaxRequests: 100, WindowMinutes: 15},
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"missing secret":         func(c *Config) { c.JWT.Secret = "" },
		"short release secret":   func(c *Config) { c.JWT.Secret = "short" },
		"non-positive expiry":    func(c *Config) { c.JWT.ExpireTime = 0 },
		"unknown driver":         func(c *Config) { c.Database.Driver = "oracle" },
		"zero rate limit":        func(c *Config) { c.RateLimit.MaxRequests = 0 },
		"zero rate limit window": func(c *Config) { c.RateLimit.WindowMinutes = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	debug := valid()
	debug.Server.Mode = "debug"
	debug.JWT.Secret = "short"
	assert.NoError(t, debug.Validate())
}
