package viewConverter

import (
	"fmt"
	"html/template"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/utils"
)

const placeholder = "—"

type Card struct {
	Symbol         string
	Color          template.CSS
	Price          string
	Quantity       string
	Value          string
	Cost           string
	PnL            string
	PnLPositive    bool
	ChangePct      string
	ChangePositive bool
}

type Dashboard struct {
	HasReport      bool
	TotalUsd       string
	PnlTotal       string
	PnlPositive    bool
	AssetCount     string
	LastUpdate     string
	StatusColor    template.CSS
	StatusText     string
	Cards          []Card
	Alerts         []string
	ChartSize      int
	RefreshSeconds int
}

// DashboardView prepares the page. Without a report the numbers show placeholders
// but the status indicator is still live.
func DashboardView(report model.Report, hasReport bool, status model.Status, refreshSeconds int) Dashboard {
	view := Dashboard{
		HasReport:      hasReport,
		TotalUsd:       placeholder,
		PnlTotal:       "PnL: " + placeholder,
		PnlPositive:    true,
		AssetCount:     placeholder,
		LastUpdate:     placeholder,
		StatusColor:    statusColor(status),
		StatusText:     status.Text,
		Cards:          []Card{},
		Alerts:         []string{},
		ChartSize:      360,
		RefreshSeconds: refreshSeconds,
	}

	if !hasReport {
		return view
	}

	view.TotalUsd = utils.Money(report.Snapshot.TotalValue)
	view.PnlTotal = "PnL: " + utils.Money(report.Snapshot.TotalPnL)
	view.PnlPositive = !report.Snapshot.TotalPnL.IsNegative()
	view.AssetCount = fmt.Sprintf("%d Assets", len(report.Rows))
	view.LastUpdate = report.UpdatedAt.Format("2006-01-02 03:04:05 PM")

	for _, r := range report.Rows {
		view.Cards = append(view.Cards, Card{
			Symbol:         r.Symbol,
			Color:          template.CSS(r.Color),
			Price:          utils.Money(r.Price),
			Quantity:       utils.Num(r.Quantity, r.QuantityPlaces),
			Value:          utils.Money(r.Value),
			Cost:           utils.Money(r.Cost),
			PnL:            utils.Money(r.PnL),
			PnLPositive:    !r.PnL.IsNegative(),
			ChangePct:      utils.Num(r.ChangePct, 2) + "%",
			ChangePositive: !r.ChangePct.IsNegative(),
		})
	}

	for _, alert := range report.Alerts {
		view.Alerts = append(view.Alerts, alert.Message)
	}

	return view
}

func statusColor(status model.Status) template.CSS {
	if status.Ok {
		return "#2ee59d"
	}
	return "#ff6b6b"
}
