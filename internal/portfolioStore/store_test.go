package portfolioStore

import (
	"testing"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitializesPricesToZero(t *testing.T) {
	s, err := New(DefaultHoldings())
	require.NoError(t, err)

	prices := s.Prices()
	assert.Len(t, prices, 4)
	for _, symbol := range []string{"BTC", "ETH", "SOL", "ADA"} {
		assert.True(t, prices.Price(symbol).IsZero(), symbol)
	}
	assert.Equal(t, []string{"bitcoin", "ethereum", "solana", "cardano"}, s.FeedIDs())
}

func TestNew_Validation(t *testing.T) {
	valid := model.Holding{Symbol: "BTC", Quantity: decimal.NewFromInt(1), CostBasis: decimal.NewFromInt(1), FeedID: "bitcoin"}

	tests := []struct {
		name     string
		holdings []model.Holding
		wantErr  error
	}{
		{
			name:     "duplicate symbol",
			holdings: []model.Holding{valid, {Symbol: "BTC", Quantity: decimal.NewFromInt(1), CostBasis: decimal.NewFromInt(1), FeedID: "other"}},
			wantErr:  ErrDuplicateSymbol,
		},
		{
			name:     "duplicate feed id",
			holdings: []model.Holding{valid, {Symbol: "XBT", Quantity: decimal.NewFromInt(1), CostBasis: decimal.NewFromInt(1), FeedID: "bitcoin"}},
			wantErr:  ErrDuplicateFeedID,
		},
		{
			name:     "zero cost basis",
			holdings: []model.Holding{{Symbol: "BTC", Quantity: decimal.NewFromInt(1), CostBasis: decimal.Zero, FeedID: "bitcoin"}},
			wantErr:  ErrInvalidCostBasis,
		},
		{
			name:     "negative quantity",
			holdings: []model.Holding{{Symbol: "BTC", Quantity: decimal.NewFromInt(-1), CostBasis: decimal.NewFromInt(1), FeedID: "bitcoin"}},
			wantErr:  ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.holdings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyFeedPrices_KeepsAbsentSymbols(t *testing.T) {
	s := MustNew(DefaultHoldings())

	updated := s.ApplyFeedPrices(map[string]decimal.Decimal{
		"bitcoin":  decimal.NewFromInt(50000),
		"ethereum": decimal.NewFromInt(3000),
	})
	assert.Equal(t, 2, updated)

	updated = s.ApplyFeedPrices(map[string]decimal.Decimal{
		"bitcoin":  decimal.NewFromInt(51000),
		"dogecoin": decimal.NewFromInt(1),
	})
	assert.Equal(t, 1, updated)

	prices := s.Prices()
	assert.True(t, prices.Price("BTC").Equal(decimal.NewFromInt(51000)))
	assert.True(t, prices.Price("ETH").Equal(decimal.NewFromInt(3000)))
	assert.True(t, prices.Price("SOL").IsZero())
	_, ok := prices["DOGE"]
	assert.False(t, ok)
}

func TestHoldingsAndPricesAreCopies(t *testing.T) {
	s := MustNew(DefaultHoldings())

	holdings := s.Holdings()
	holdings[0].Symbol = "XXX"
	assert.Equal(t, "BTC", s.Holdings()[0].Symbol)

	prices := s.Prices()
	prices["BTC"] = decimal.NewFromInt(1)
	assert.True(t, s.Prices().Price("BTC").IsZero())
}
