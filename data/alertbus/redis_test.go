package alertbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAlerts(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	alerts := []model.Alert{
		{Symbol: "BTC", Kind: model.AlertRising, ChangePct: decimal.RequireFromString("19.05"), Message: "📈 ALERT: BTC up 19.05%", At: at},
		{Symbol: "SOL", Kind: model.AlertFalling, ChangePct: decimal.RequireFromString("-15.79"), Message: "📉 ALERT: SOL down -15.79%", At: at},
	}

	payloads, err := EncodeAlerts(alerts)
	require.NoError(t, err)
	require.Len(t, payloads, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payloads[1], &got))
	assert.Equal(t, "SOL", got["symbol"])
	assert.Equal(t, "falling", got["kind"])
	assert.Equal(t, "-15.79", got["changePct"])
	assert.Equal(t, "2026-01-02T03:04:05Z", got["at"])
}

func TestPublishAlerts_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	bus := NewRedisAlertBus(client, "portfolio:alerts")
	err := bus.PublishAlerts(context.Background(), []model.Alert{{Symbol: "BTC", Kind: model.AlertRising}})
	assert.Error(t, err)
}
