package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MATTERMOST_URL", "https://chat.example.com/")
	t.Setenv("BOT_TOKEN", "bot-token")
	t.Setenv("SLASH_TOKEN", "slash-token")
	t.Setenv("CALLBACK_URL", "https://bridge.example.com/")
}

func TestLoadRequiresMattermostSettings(t *testing.T) {
	for _, key := range []string{"MATTERMOST_URL", "BOT_TOKEN", "SLASH_TOKEN", "CALLBACK_URL"} {
		setRequiredEnv(t)
		t.Setenv(key, "")

		_, err := Load()
		require.Error(t, err, "missing %s must fail startup", key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ticket-bridge", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
}

func TestLoadTrimsTrailingSlashes(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com", cfg.Mattermost.BaseURL)
	assert.Equal(t, "https://bridge.example.com", cfg.Mattermost.CallbackURL)
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
