package telebotConverter

import (
	"fmt"
	"strings"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/model/tgCallback"
	"github.com/KotFed0t/crypto_dashboard/utils"
	tele "gopkg.in/telebot.v4"
)

func RefreshMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("🔄 Refresh", tgCallback.Refresh)))
	return markup
}

func ReportResponse(report model.Report, status model.Status) (text string, markup *tele.ReplyMarkup) {
	var sb strings.Builder

	statusDot := "🟢"
	if !status.Ok {
		statusDot = "🔴"
	}

	sb.WriteString(fmt.Sprintf("%s %s\n", statusDot, status.Text))
	sb.WriteString(fmt.Sprintf("💰 Total: %s\n", utils.Money(report.Snapshot.TotalValue)))
	sb.WriteString(fmt.Sprintf("📊 PnL: %s\n", utils.Money(report.Snapshot.TotalPnL)))
	sb.WriteString(fmt.Sprintf("🕒 %s\n\n", report.UpdatedAt.Format("2006-01-02 15:04:05")))

	for _, r := range report.Rows {
		sb.WriteString(fmt.Sprintf("%s %s\n", r.Symbol, utils.Money(r.Price)))
		sb.WriteString(fmt.Sprintf("   ▸ Quantity: %s\n", utils.Num(r.Quantity, r.QuantityPlaces)))
		sb.WriteString(fmt.Sprintf("   ▸ Value: %s\n", utils.Money(r.Value)))
		sb.WriteString(fmt.Sprintf("   ▸ Cost: %s\n", utils.Money(r.Cost)))
		sb.WriteString(fmt.Sprintf("   ▸ PnL: %s\n", utils.Money(r.PnL)))
		sb.WriteString(fmt.Sprintf("   ▸ Change: %s%%\n\n", utils.Num(r.ChangePct, 2)))
	}

	if len(report.Alerts) > 0 {
		sb.WriteString(AlertsText(report.Alerts))
	}

	return sb.String(), RefreshMarkup()
}

func AlertsText(alerts []model.Alert) string {
	var sb strings.Builder
	for _, alert := range alerts {
		sb.WriteString(alert.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}
