package alertRule

import (
	"fmt"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
)

// Thresholds are asymmetric: a rise alerts above +10%, a drop below -5%.
var (
	RisingThreshold  = decimal.NewFromInt(10)
	FallingThreshold = decimal.NewFromInt(-5)
)

type Rule func(row model.ReportRow) (model.Alert, bool)

func Check(row model.ReportRow) (model.Alert, bool) {
	switch {
	case row.ChangePct.GreaterThan(RisingThreshold):
		return model.Alert{
			Symbol:    row.Symbol,
			Kind:      model.AlertRising,
			ChangePct: row.ChangePct,
			Message:   fmt.Sprintf("📈 ALERT: %s up %s%%", row.Symbol, row.ChangePct.StringFixed(2)),
		}, true
	case row.ChangePct.LessThan(FallingThreshold):
		return model.Alert{
			Symbol:    row.Symbol,
			Kind:      model.AlertFalling,
			ChangePct: row.ChangePct,
			Message:   fmt.Sprintf("📉 ALERT: %s down %s%%", row.Symbol, row.ChangePct.StringFixed(2)),
		}, true
	default:
		return model.Alert{}, false
	}
}

// Collect applies rule to every row and keeps the produced alerts in row order.
func Collect(rows []model.ReportRow, rule Rule) []model.Alert {
	alerts := make([]model.Alert, 0)
	for _, r := range rows {
		if alert, ok := rule(r); ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}
