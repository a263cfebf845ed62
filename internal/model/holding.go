package model

import "github.com/shopspring/decimal"

type Holding struct {
	Symbol         string
	Quantity       decimal.Decimal
	CostBasis      decimal.Decimal // purchase price per unit, USD
	FeedID         string          // coingecko asset id
	Color          string
	QuantityPlaces int32 // decimals used when displaying Quantity
}

// PriceMap holds the latest observed USD price per symbol.
type PriceMap map[string]decimal.Decimal

// Price returns zero for unknown symbols.
func (p PriceMap) Price(symbol string) decimal.Decimal {
	price, ok := p[symbol]
	if !ok {
		return decimal.Zero
	}
	return price
}

func (p PriceMap) Clone() PriceMap {
	res := make(PriceMap, len(p))
	for symbol, price := range p {
		res[symbol] = price
	}
	return res
}
