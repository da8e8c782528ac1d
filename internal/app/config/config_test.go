package config

import (
	"testing"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := NewInternalConfig()
		assert.Equal(t, constvars.AuthModeEnv, cfg.Auth.Mode)
		assert.Equal(t, constvars.DefaultTokenEnvKey, cfg.Auth.TokenEnvKey)
		assert.Equal(t, 30, cfg.Transport.TimeoutInSeconds)
		assert.Equal(t, []string{"sandbox-token"}, cfg.Sandbox.APITokens)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("NAMASTE_BASE_URL", "https://api.namaste.in")
		t.Setenv("NAMASTE_AUTH_MODE", constvars.AuthModeJWT)
		t.Setenv("NAMASTE_RETRY_MAX_ATTEMPTS", "3")
		t.Setenv("NAMASTE_RATE_LIMIT_PER_SECOND", "2.5")

		cfg := NewInternalConfig()
		assert.Equal(t, "https://api.namaste.in", cfg.Namaste.BaseUrl)
		assert.Equal(t, constvars.AuthModeJWT, cfg.Auth.Mode)
		assert.Equal(t, 3, cfg.Transport.RetryMaxAttempts)
		assert.Equal(t, 2.5, cfg.Transport.RateLimitPerSecond)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_PORT", "6380")
	cfg := NewDriverConfig()
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
}
