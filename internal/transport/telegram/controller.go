package telegram

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KotFed0t/crypto_dashboard/internal/converter/telebotConverter"
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/service"
	"github.com/KotFed0t/crypto_dashboard/utils"
	tele "gopkg.in/telebot.v4"
)

const (
	greetingMsg    = "Hello! /portfolio shows the current valuation, /refresh fetches fresh prices."
	noReportMsg    = "Prices are not loaded yet, try /refresh"
	inProgressMsg  = "Refresh already in progress"
	feedErrMsg     = "Connection error, showing last known prices"
	internalErrMsg = "something went wrong..."
)

type DashboardService interface {
	Refresh(ctx context.Context, manual bool) (model.Report, error)
	Report() (model.Report, error)
	Status() model.Status
}

type Controller struct {
	dashboardService DashboardService
}

func NewController(dashboardService DashboardService) *Controller {
	return &Controller{dashboardService: dashboardService}
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Send(greetingMsg, telebotConverter.RefreshMarkup())
}

func (ctrl *Controller) Portfolio(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	report, err := ctrl.dashboardService.Report()
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			return c.Send(noReportMsg, telebotConverter.RefreshMarkup())
		}
		slog.Error("got error from dashboardService.Report", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return c.Send(internalErrMsg)
	}

	return c.Send(telebotConverter.ReportResponse(report, ctrl.dashboardService.Status()))
}

func (ctrl *Controller) Refresh(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	text, markup := ctrl.refresh(ctx)
	return c.Send(text, markup)
}

func (ctrl *Controller) RefreshCallback(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := c.Respond(); err != nil {
		slog.Warn("can't respond to callback", slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	text, markup := ctrl.refresh(ctx)
	err := c.Edit(text, markup)
	if errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}
	return err
}

// refresh runs a manual cycle and builds the reply; on failure the last report is shown.
func (ctrl *Controller) refresh(ctx context.Context) (string, *tele.ReplyMarkup) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	report, err := ctrl.dashboardService.Refresh(ctx, true)
	if err == nil {
		return telebotConverter.ReportResponse(report, ctrl.dashboardService.Status())
	}

	notice := feedErrMsg
	if errors.Is(err, service.ErrRefreshInProgress) {
		notice = inProgressMsg
	} else {
		slog.Error("got error from dashboardService.Refresh", slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	last, err := ctrl.dashboardService.Report()
	if err != nil {
		return notice, telebotConverter.RefreshMarkup()
	}

	text, markup := telebotConverter.ReportResponse(last, ctrl.dashboardService.Status())
	return notice + "\n\n" + text, markup
}
