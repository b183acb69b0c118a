package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Autosave.Delay)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("AUTOSAVE_DELAY_MS", "500")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.Autosave.Delay)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTOSAVE_DELAY_MS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Autosave.Delay)
}

func TestValidate(t *testing.T) {
	t.Run("production requires firebase credentials", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FIREBASE_CREDENTIALS_PATH")
	})

	t.Run("production with credentials passes", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/secrets/firebase.json")
		_, err := Load()
		assert.NoError(t, err)
	})

	t.Run("non-positive autosave delay is rejected", func(t *testing.T) {
		t.Setenv("AUTOSAVE_DELAY_MS", "-100")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTOSAVE_DELAY_MS")
	})
}
