package consoleGenerator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/charmbracelet/glamour"
)

// ConsoleGenerator prints the cycle summary to a terminal.
type ConsoleGenerator struct {
	out   io.Writer
	style string
}

func New(out io.Writer, style string) *ConsoleGenerator {
	return &ConsoleGenerator{out: out, style: style}
}

func (g *ConsoleGenerator) Print(ctx context.Context, report model.Report) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConsoleGenerator.Print"

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(g.style),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		slog.Error("can't create glamour renderer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	out, err := renderer.Render(Markdown(report))
	if err != nil {
		slog.Error("can't render console report", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	_, err = io.WriteString(g.out, out)
	return err
}

func Markdown(report model.Report) string {
	var sb strings.Builder

	sb.WriteString("# Crypto portfolio\n\n")
	sb.WriteString(fmt.Sprintf("- Total value: **%s**\n", report.Snapshot.TotalValue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Total PnL: **%s**\n", report.Snapshot.TotalPnL.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Updated: %s\n\n", report.UpdatedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("## Alerts\n\n")
	if len(report.Alerts) == 0 {
		sb.WriteString("No alerts\n\n")
	}
	for _, alert := range report.Alerts {
		sb.WriteString(fmt.Sprintf("- %s\n", alert.Message))
	}
	if len(report.Alerts) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("| symbol | value | pnl | change % |\n")
	sb.WriteString("|---|---:|---:|---:|\n")
	for _, r := range report.Rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			r.Symbol, r.Value.StringFixed(2), r.PnL.StringFixed(2), r.ChangePct.StringFixed(2)))
	}

	return sb.String()
}
