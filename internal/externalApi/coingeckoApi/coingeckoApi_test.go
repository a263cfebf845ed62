package coingeckoApi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KotFed0t/crypto_dashboard/config"
	"github.com/KotFed0t/crypto_dashboard/internal/externalApi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *CoinGeckoApi {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.Timeout = timeout
	cfg.API.CoinGeckoApi.Url = srv.URL
	return New(cfg)
}

func TestGetPrices_Success(t *testing.T) {
	var calls atomic.Int32
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum,solana,cardano", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Contains(t, r.Header.Get("Cache-Control"), "no-store")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":50000},"ethereum":{"usd":3000.5},"cardano":{"eur":0.4},"solana":{"usd":null}}`))
	}, time.Second)

	prices, err := api.GetPrices(context.Background(), []string{"bitcoin", "ethereum", "solana", "cardano"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, prices, 2)
	assert.True(t, prices["bitcoin"].Equal(decimal.NewFromInt(50000)))
	assert.True(t, prices["ethereum"].Equal(decimal.RequireFromString("3000.5")))
	_, ok := prices["cardano"]
	assert.False(t, ok)
	_, ok = prices["solana"]
	assert.False(t, ok)
}

func TestGetPrices_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"status":{"error_code":429}}`))
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"bitcoin":`))
			},
		},
		{
			name: "payload is not an object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["bitcoin"]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestApi(t, tt.handler, time.Second)

			prices, err := api.GetPrices(context.Background(), []string{"bitcoin"})
			assert.ErrorIs(t, err, externalApi.ErrFeedUnavailable)
			assert.Nil(t, prices)
		})
	}
}

func TestGetPrices_SkipsMalformedEntries(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":50000},"cardano":{"usd":"n/a"},"solana":5,"ethereum":{"usd":"3000"},"dogecoin":{"usd":{}}}`))
	}, time.Second)

	prices, err := api.GetPrices(context.Background(), []string{"bitcoin", "ethereum", "solana", "cardano", "dogecoin"})
	require.NoError(t, err)

	assert.Len(t, prices, 1)
	assert.True(t, prices["bitcoin"].Equal(decimal.NewFromInt(50000)))
}

func TestGetPrices_Timeout(t *testing.T) {
	release := make(chan struct{})
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	_, err := api.GetPrices(context.Background(), []string{"bitcoin"})
	assert.ErrorIs(t, err, externalApi.ErrFeedUnavailable)
}
