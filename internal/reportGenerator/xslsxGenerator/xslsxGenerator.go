package xslsxGenerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Portfolio"

type XSLSXGenerator struct{}

func New() *XSLSXGenerator {
	return &XSLSXGenerator{}
}

func (g *XSLSXGenerator) Generate(ctx context.Context, report model.Report) (fileBytes []byte, fileExtension string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "XSLSXGenerator.Generate"

	if len(report.Rows) == 0 {
		return nil, "", errors.New("empty report")
	}

	slog.Debug("Generate start", slog.String("rqID", rqID), slog.String("op", op))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	err = g.fillSheet(f, report)
	if err != nil {
		slog.Error("got error while filling sheet", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		slog.Error("got error while Saving file to bytes buffer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	slog.Debug("Generate completed", slog.String("rqID", rqID), slog.String("op", op))

	return buf.Bytes(), ".xlsx", nil
}

func (g *XSLSXGenerator) headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{color},
		},
	})
}

func (g *XSLSXGenerator) fillSheet(f *excelize.File, report model.Report) error {
	_, err := f.NewSheet(SheetName)
	if err != nil {
		return err
	}

	err = f.MergeCell(SheetName, "A1", "I1")
	if err != nil {
		return err
	}
	_ = f.SetCellStr(SheetName, "A1", fmt.Sprintf("Portfolio at %s", report.UpdatedAt.Format("2006-01-02 15:04:05")))

	styleID, err := g.headerStyle(f, "#cfe2f3")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "I2", styleID); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	header := []any{"symbol", "quantity", "cost basis", "price", "value", "cost", "pnl", "change %", "share %"}
	if err := f.SetSheetRow(SheetName, "A2", &header); err != nil {
		return err
	}

	total := report.Snapshot.TotalValue
	rowNum := 2
	for _, r := range report.Rows {
		rowNum++
		share := 0.0
		if total.IsPositive() {
			share = r.Value.Div(total).Shift(2).InexactFloat64()
		}

		row := []any{
			r.Symbol,
			r.Quantity.InexactFloat64(),
			r.CostBasis.InexactFloat64(),
			r.Price.InexactFloat64(),
			r.Value.InexactFloat64(),
			r.Cost.InexactFloat64(),
			r.PnL.InexactFloat64(),
			r.ChangePct.Round(2).InexactFloat64(),
			share,
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return err
		}
	}

	// totals
	rowNum++
	_ = f.SetCellStr(SheetName, fmt.Sprintf("A%d", rowNum), "total")
	_ = f.SetCellValue(SheetName, fmt.Sprintf("E%d", rowNum), report.Snapshot.TotalValue.InexactFloat64())
	_ = f.SetCellValue(SheetName, fmt.Sprintf("G%d", rowNum), report.Snapshot.TotalPnL.InexactFloat64())

	styleID, err = g.headerStyle(f, "#d9ead3")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("I%d", rowNum), styleID); err != nil {
		return fmt.Errorf("apply totals style: %w", err)
	}

	// alerts
	rowNum += 2
	_ = f.SetCellStr(SheetName, fmt.Sprintf("A%d", rowNum), "alerts")
	if len(report.Alerts) == 0 {
		_ = f.SetCellStr(SheetName, fmt.Sprintf("B%d", rowNum), "no alerts")
	}
	for _, alert := range report.Alerts {
		_ = f.SetCellStr(SheetName, fmt.Sprintf("B%d", rowNum), alert.Message)
		rowNum++
	}

	return nil
}
