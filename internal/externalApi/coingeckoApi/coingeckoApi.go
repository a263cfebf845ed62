package coingeckoApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KotFed0t/crypto_dashboard/config"
	"github.com/KotFed0t/crypto_dashboard/internal/externalApi"
	"github.com/KotFed0t/crypto_dashboard/internal/model/coingeckoModel"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const vsCurrency = "usd"

type CoinGeckoApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *CoinGeckoApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.CoinGeckoApi.Url)
	return &CoinGeckoApi{client: client}
}

// GetPrices fetches USD prices for all feedIDs in one request.
// Ids missing from the response, or without a numeric usd price, are absent from the result.
// Every failure wraps externalApi.ErrFeedUnavailable.
func (a *CoinGeckoApi) GetPrices(ctx context.Context, feedIDs []string) (map[string]decimal.Decimal, error) {
	rqId := utils.GetRequestIDFromCtx(ctx)
	url := "/simple/price"
	params := map[string]string{
		"ids":           strings.Join(feedIDs, ","),
		"vs_currencies": vsCurrency,
	}

	slog.Debug("start CoinGeckoApi.GetPrices request", slog.String("rqID", rqId), slog.Any("ids", feedIDs))

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache, no-store").
		SetHeader("Pragma", "no-cache").
		SetQueryParams(params).
		Get(url)

	if err != nil {
		slog.Error("error while dialing CoinGeckoApi", slog.String("err", err.Error()), slog.String("rqID", rqId))
		return nil, fmt.Errorf("%w: %w", externalApi.ErrFeedUnavailable, err)
	}

	if !resp.IsSuccess() {
		slog.Error("CoinGeckoApi responded with error status", slog.Int("status", resp.StatusCode()), slog.String("rqID", rqId))
		return nil, fmt.Errorf("%w: status %d", externalApi.ErrFeedUnavailable, resp.StatusCode())
	}

	rawPrices := coingeckoModel.SimplePrice{}
	err = json.Unmarshal(resp.Body(), &rawPrices)
	if err != nil {
		slog.Error("can't unmarshall response into coingeckoModel.SimplePrice", slog.String("err", err.Error()), slog.String("rqID", rqId))
		return nil, fmt.Errorf("%w: %w", externalApi.ErrFeedUnavailable, err)
	}

	res := a.parseSimplePrice(rawPrices)

	slog.Debug("CoinGeckoApi.GetPrices request complete", slog.String("rqID", rqId), slog.Int("prices", len(res)))

	return res, nil
}

func (a *CoinGeckoApi) parseSimplePrice(rawPrices coingeckoModel.SimplePrice) map[string]decimal.Decimal {
	res := make(map[string]decimal.Decimal, len(rawPrices))
	for feedID, rawQuote := range rawPrices {
		price, ok := parseUsd(rawQuote)
		if !ok {
			continue
		}
		res[feedID] = price
	}
	return res
}

// parseUsd accepts only a JSON number under the usd key.
func parseUsd(rawQuote json.RawMessage) (decimal.Decimal, bool) {
	quote := coingeckoModel.Quote{}
	if err := json.Unmarshal(rawQuote, &quote); err != nil {
		return decimal.Zero, false
	}

	var usd *float64
	if err := json.Unmarshal(quote[vsCurrency], &usd); err != nil || usd == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*usd), true
}
