package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats an USD amount like "$1,234.56" or "-$120.00".
func Money(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	return cur.Formatter().Format(minorUnits(amount, int32(cur.Fraction)))
}

// Num formats n with thousand separators and exactly places decimals.
func Num(n decimal.Decimal, places int32) string {
	f := money.NewFormatter(int(places), ".", ",", "", "1")
	return f.Format(minorUnits(n, places))
}

func minorUnits(n decimal.Decimal, places int32) int64 {
	return n.Shift(places).Round(0).IntPart()
}
