package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/infoline/infoline-api/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_VERSION", "APP_ENVIRONMENT", "PORT",
		"LOG_LEVEL", "PING_TARGET", "SLOW_MAX_DELAY_MS", "APP_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()

	assert.Equal(t, "infoline-api", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.PingTarget)
	assert.Equal(t, config.DefaultSlowMaxDelay, cfg.SlowMaxDelay)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "infoline")
	t.Setenv("APP_VERSION", "2.3.4")
	t.Setenv("APP_ENVIRONMENT", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PING_TARGET", "1.1.1.1")
	t.Setenv("SLOW_MAX_DELAY_MS", "5000")
	t.Setenv("APP_DEBUG", "true")

	cfg := config.Load()

	assert.Equal(t, "infoline", cfg.AppName)
	assert.Equal(t, "2.3.4", cfg.AppVersion)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1.1.1.1", cfg.PingTarget)
	assert.Equal(t, 5*time.Second, cfg.SlowMaxDelay)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SLOW_MAX_DELAY_MS", "-100")

	cfg := config.Load()

	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultSlowMaxDelay, cfg.SlowMaxDelay)
}
