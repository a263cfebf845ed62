package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Jobs.RefreshInterval)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.API.CoinGeckoApi.Url)
	assert.Empty(t, cfg.Telegram.Token)
	assert.Empty(t, cfg.Redis.Host)
	assert.Equal(t, "portfolio:alerts", cfg.Redis.AlertsChannel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REFRESH_JOB_INTERVAL", "1m")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("TELEGRAM_ALERT_CHAT_ID", "12345")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Jobs.RefreshInterval)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, int64(12345), cfg.Telegram.AlertChatID)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
