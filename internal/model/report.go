package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportRow struct {
	Symbol         string          `json:"symbol"`
	Color          string          `json:"color"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityPlaces int32           `json:"-"`
	CostBasis      decimal.Decimal `json:"costBasis"`
	Price          decimal.Decimal `json:"price"`
	Value          decimal.Decimal `json:"value"`
	Cost           decimal.Decimal `json:"cost"`
	PnL            decimal.Decimal `json:"pnl"`
	ChangePct      decimal.Decimal `json:"changePct"`
}

type AggregateSnapshot struct {
	TotalValue decimal.Decimal `json:"totalValue"`
	TotalPnL   decimal.Decimal `json:"totalPnl"`
}

// Report is the result of one successful refresh cycle.
type Report struct {
	Rows      []ReportRow       `json:"rows"`
	Snapshot  AggregateSnapshot `json:"snapshot"`
	Alerts    []Alert           `json:"alerts"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
