package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KotFed0t/crypto_dashboard/internal/chartLayout"
	"github.com/KotFed0t/crypto_dashboard/internal/converter/viewConverter"
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/service"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardService interface {
	Refresh(ctx context.Context, manual bool) (model.Report, error)
	Report() (model.Report, error)
	Status() model.Status
	Chart(size float64) (chartLayout.Donut, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, report model.Report) (fileBytes []byte, fileExtension string, err error)
}

type Controller struct {
	dashboardService DashboardService
	reportGenerator  ReportGenerator
	refreshSeconds   int
}

func NewController(dashboardService DashboardService, reportGenerator ReportGenerator, refreshSeconds int) *Controller {
	return &Controller{
		dashboardService: dashboardService,
		reportGenerator:  reportGenerator,
		refreshSeconds:   refreshSeconds,
	}
}

type reportResponse struct {
	Report *model.Report `json:"report,omitempty"`
	Status model.Status  `json:"status"`
	Error  string        `json:"error,omitempty"`
}

func (ctrl *Controller) Index(c *gin.Context) {
	report, err := ctrl.dashboardService.Report()
	view := viewConverter.DashboardView(report, err == nil, ctrl.dashboardService.Status(), ctrl.refreshSeconds)
	c.HTML(http.StatusOK, dashboardTemplate, view)
}

func (ctrl *Controller) GetReport(c *gin.Context) {
	report, err := ctrl.dashboardService.Report()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, reportResponse{Status: ctrl.dashboardService.Status(), Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reportResponse{Report: &report, Status: ctrl.dashboardService.Status()})
}

func (ctrl *Controller) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	// the cycle finishes even if the client goes away
	report, err := ctrl.dashboardService.Refresh(context.WithoutCancel(ctx), true)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, reportResponse{Report: &report, Status: ctrl.dashboardService.Status()})
	case errors.Is(err, service.ErrRefreshInProgress):
		c.JSON(http.StatusAccepted, reportResponse{Status: ctrl.dashboardService.Status(), Error: err.Error()})
	default:
		slog.Error("got error from dashboardService.Refresh", slog.String("rqID", rqID), slog.String("err", err.Error()))
		c.JSON(http.StatusBadGateway, reportResponse{Status: ctrl.dashboardService.Status(), Error: err.Error()})
	}
}

func (ctrl *Controller) RefreshForm(c *gin.Context) {
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := ctrl.dashboardService.Refresh(context.WithoutCancel(ctx), true)
	if err != nil && !errors.Is(err, service.ErrRefreshInProgress) {
		slog.Error("got error from dashboardService.Refresh", slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Chart redraws the donut for the requested size from the last report.
// Before the first report only the background ring is drawn.
func (ctrl *Controller) Chart(c *gin.Context) {
	size := float64(chartLayout.DefaultSize)
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
			return
		}
		size = parsed
	}

	donut, err := ctrl.dashboardService.Chart(size)
	if err != nil {
		donut = chartLayout.Layout(nil, size)
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml", []byte(chartLayout.RenderSVG(donut)))
}

func (ctrl *Controller) Export(c *gin.Context) {
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	report, err := ctrl.dashboardService.Report()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	fileBytes, ext, err := ctrl.reportGenerator.Generate(ctx, report)
	if err != nil {
		slog.Error("got error from reportGenerator.Generate", slog.String("rqID", rqID), slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "can't generate report"})
		return
	}

	filename := fmt.Sprintf("portfolio-%s%s", report.UpdatedAt.Format("20060102-150405"), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, fileBytes)
}

func (ctrl *Controller) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": ctrl.dashboardService.Status().State})
}
