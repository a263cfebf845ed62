package dashboardService

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KotFed0t/crypto_dashboard/internal/alertRule"
	"github.com/KotFed0t/crypto_dashboard/internal/chartLayout"
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/service"
	"github.com/KotFed0t/crypto_dashboard/internal/valuation"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/shopspring/decimal"
)

const (
	StatusOnline     = "Online"
	StatusUpdating   = "Updating…"
	StatusConnection = "Connection error"

	errRefreshAborted = "refresh aborted"
)

type PortfolioStore interface {
	Holdings() []model.Holding
	FeedIDs() []string
	Prices() model.PriceMap
	ApplyFeedPrices(quotes map[string]decimal.Decimal) (updated int)
}

type PriceFeed interface {
	GetPrices(ctx context.Context, feedIDs []string) (map[string]decimal.Decimal, error)
}

type AlertPublisher interface {
	PublishAlerts(ctx context.Context, alerts []model.Alert) error
}

type ConsolePrinter interface {
	Print(ctx context.Context, report model.Report) error
}

// DashboardService runs refresh cycles: fetch prices, value the portfolio, collect alerts
// and keep the last report for the display surfaces. At most one cycle runs at a time.
type DashboardService struct {
	store      PortfolioStore
	feed       PriceFeed
	publishers []AlertPublisher
	console    ConsolePrinter
	now        func() time.Time

	inFlight atomic.Bool

	mu     sync.RWMutex
	status model.Status
	report *model.Report
}

func New(store PortfolioStore, feed PriceFeed, publishers []AlertPublisher, console ConsolePrinter) *DashboardService {
	return &DashboardService{
		store:      store,
		feed:       feed,
		publishers: publishers,
		console:    console,
		now:        time.Now,
		status:     model.Status{State: model.StateIdle, Ok: true, Text: StatusOnline},
	}
}

// RefreshJob is the timer entry point. A tick that finds a cycle in flight is a no-op.
func (s *DashboardService) RefreshJob(ctx context.Context) error {
	_, err := s.Refresh(ctx, false)
	if errors.Is(err, service.ErrRefreshInProgress) {
		return nil
	}
	return err
}

// Refresh runs one cycle. It returns service.ErrRefreshInProgress without doing anything
// when another cycle is running. On feed failure the prices and the last report are kept.
func (s *DashboardService) Refresh(ctx context.Context, manual bool) (model.Report, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "DashboardService.Refresh"

	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Info("refresh skipped, cycle in flight", slog.String("rqID", rqID), slog.String("op", op), slog.Bool("manual", manual))
		return model.Report{}, service.ErrRefreshInProgress
	}
	defer s.inFlight.Store(false)

	slog.Debug("Refresh start", slog.String("rqID", rqID), slog.String("op", op), slog.Bool("manual", manual))
	defer func() {
		slog.Debug("Refresh finished", slog.String("rqID", rqID), slog.String("op", op))
	}()

	statusText := StatusOnline
	if manual {
		statusText = StatusUpdating
	}
	s.setStatus(func(st *model.Status) {
		st.State = model.StateRefreshing
		st.Ok = true
		st.Text = statusText
	})

	// a panic below must not leave the status stuck in Refreshing
	settled := false
	defer func() {
		if settled {
			return
		}
		s.setStatus(func(st *model.Status) {
			st.State = model.StateError
			st.Ok = false
			st.Text = StatusConnection
			st.LastError = errRefreshAborted
		})
	}()

	quotes, err := s.feed.GetPrices(ctx, s.store.FeedIDs())
	if err != nil {
		slog.Error("got error from feed.GetPrices", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		s.setStatus(func(st *model.Status) {
			st.State = model.StateError
			st.Ok = false
			st.Text = StatusConnection
			st.LastError = err.Error()
		})
		settled = true
		return model.Report{}, err
	}

	updated := s.store.ApplyFeedPrices(quotes)
	slog.Debug("prices applied", slog.String("rqID", rqID), slog.String("op", op), slog.Int("updated", updated))

	report := s.buildReport()

	s.mu.Lock()
	s.report = &report
	s.status = model.Status{State: model.StateIdle, Ok: true, Text: StatusOnline, LastUpdate: report.UpdatedAt}
	s.mu.Unlock()
	settled = true

	slog.Info(
		"portfolio refreshed",
		slog.String("rqID", rqID),
		slog.String("totalValue", report.Snapshot.TotalValue.StringFixed(2)),
		slog.String("totalPnl", report.Snapshot.TotalPnL.StringFixed(2)),
		slog.Int("alerts", len(report.Alerts)),
	)

	s.dispatch(ctx, report)

	return report, nil
}

func (s *DashboardService) buildReport() model.Report {
	holdings := s.store.Holdings()
	prices := s.store.Prices()

	rows := valuation.BuildReport(holdings, prices)
	now := s.now()

	alerts := alertRule.Collect(rows, alertRule.Check)
	for i := range alerts {
		alerts[i].At = now
	}

	return model.Report{
		Rows:      rows,
		Snapshot:  valuation.Summarize(rows),
		Alerts:    alerts,
		UpdatedAt: now,
	}
}

// dispatch hands the report to the side outputs; their failures never fail the cycle.
func (s *DashboardService) dispatch(ctx context.Context, report model.Report) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "DashboardService.dispatch"

	for _, alert := range report.Alerts {
		slog.Warn(alert.Message, slog.String("rqID", rqID), slog.String("symbol", alert.Symbol), slog.String("kind", string(alert.Kind)))
	}

	if len(report.Alerts) > 0 {
		for _, p := range s.publishers {
			if err := p.PublishAlerts(ctx, report.Alerts); err != nil {
				slog.Error("got error from PublishAlerts", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			}
		}
	}

	if s.console != nil {
		if err := s.console.Print(ctx, report); err != nil {
			slog.Error("got error from console.Print", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}
}

func (s *DashboardService) setStatus(fn func(st *model.Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.status)
}

func (s *DashboardService) Status() model.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Report returns the last successfully computed report.
func (s *DashboardService) Report() (model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return model.Report{}, service.ErrNoReport
	}
	return *s.report, nil
}

// Chart lays out the donut for a new viewport size from the last report.
// It never touches the feed or recomputes valuation.
func (s *DashboardService) Chart(size float64) (chartLayout.Donut, error) {
	report, err := s.Report()
	if err != nil {
		return chartLayout.Donut{}, err
	}
	return chartLayout.Layout(report.Rows, size), nil
}
