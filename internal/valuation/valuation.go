// Package valuation computes report rows and totals from holdings and prices.
// All functions are pure.
package valuation

import (
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildReport returns one row per holding in holding order. A missing price counts as zero.
func BuildReport(holdings []model.Holding, prices model.PriceMap) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, buildRow(h, prices.Price(h.Symbol)))
	}
	return rows
}

func buildRow(h model.Holding, price decimal.Decimal) model.ReportRow {
	value := h.Quantity.Mul(price)
	cost := h.Quantity.Mul(h.CostBasis)

	return model.ReportRow{
		Symbol:         h.Symbol,
		Color:          h.Color,
		Quantity:       h.Quantity,
		QuantityPlaces: h.QuantityPlaces,
		CostBasis:      h.CostBasis,
		Price:          price,
		Value:          value,
		Cost:           cost,
		PnL:            value.Sub(cost),
		ChangePct:      ChangePct(price, h.CostBasis),
	}
}

// ChangePct is (price - costBasis) / costBasis * 100.
// Holdings are validated to have a positive cost basis; a zero one yields 0%.
func ChangePct(price, costBasis decimal.Decimal) decimal.Decimal {
	if costBasis.IsZero() {
		return decimal.Zero
	}
	return price.Sub(costBasis).Div(costBasis).Mul(hundred)
}

// Summarize sums row values and PnLs.
func Summarize(rows []model.ReportRow) model.AggregateSnapshot {
	snapshot := model.AggregateSnapshot{TotalValue: decimal.Zero, TotalPnL: decimal.Zero}
	for _, r := range rows {
		snapshot.TotalValue = snapshot.TotalValue.Add(r.Value)
		snapshot.TotalPnL = snapshot.TotalPnL.Add(r.PnL)
	}
	return snapshot
}
