package portfolioStore

import (
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultHoldings is the compiled-in portfolio.
func DefaultHoldings() []model.Holding {
	return []model.Holding{
		{Symbol: "BTC", Quantity: decimal.RequireFromString("0.015"), CostBasis: decimal.NewFromInt(42000), FeedID: "bitcoin", Color: "#f2c94c", QuantityPlaces: 4},
		{Symbol: "ETH", Quantity: decimal.RequireFromString("0.30"), CostBasis: decimal.NewFromInt(2300), FeedID: "ethereum", Color: "#7b61ff", QuantityPlaces: 4},
		{Symbol: "SOL", Quantity: decimal.NewFromInt(12), CostBasis: decimal.NewFromInt(95), FeedID: "solana", Color: "#2dd4bf", QuantityPlaces: 4},
		{Symbol: "ADA", Quantity: decimal.NewFromInt(500), CostBasis: decimal.RequireFromString("0.45"), FeedID: "cardano", Color: "#3b82f6", QuantityPlaces: 2},
	}
}
