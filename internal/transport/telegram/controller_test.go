package telegram

import (
	"context"
	"testing"
	"time"

	"github.com/KotFed0t/crypto_dashboard/internal/externalApi"
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

// MockDashboardService is a mock implementation of DashboardService for testing
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Refresh(ctx context.Context, manual bool) (model.Report, error) {
	args := m.Called(ctx, manual)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *MockDashboardService) Report() (model.Report, error) {
	args := m.Called()
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *MockDashboardService) Status() model.Status {
	args := m.Called()
	return args.Get(0).(model.Status)
}

// fakeContext records what handlers send; any other tele.Context method panics.
type fakeContext struct {
	tele.Context
	store     map[string]any
	sent      []any
	edited    []any
	responded bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{store: map[string]any{"rqID": "test-rq"}}
}

func (f *fakeContext) Get(key string) any { return f.store[key] }

func (f *fakeContext) Send(what any, opts ...any) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Edit(what any, opts ...any) error {
	f.edited = append(f.edited, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responded = true
	return nil
}

func testReport() model.Report {
	return model.Report{
		Rows: []model.ReportRow{{
			Symbol: "BTC", Quantity: decimal.RequireFromString("0.015"), QuantityPlaces: 4,
			Price: decimal.NewFromInt(50000), Value: decimal.NewFromInt(750), Cost: decimal.NewFromInt(630),
			PnL: decimal.NewFromInt(120), ChangePct: decimal.RequireFromString("19.05"),
		}},
		Snapshot:  model.AggregateSnapshot{TotalValue: decimal.NewFromInt(750), TotalPnL: decimal.NewFromInt(120)},
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPortfolio_NoReportYet(t *testing.T) {
	srv := new(MockDashboardService)
	srv.On("Report").Return(model.Report{}, service.ErrNoReport)

	c := newFakeContext()
	require.NoError(t, NewController(srv).Portfolio(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, noReportMsg, c.sent[0])
}

func TestPortfolio(t *testing.T) {
	srv := new(MockDashboardService)
	srv.On("Report").Return(testReport(), nil)
	srv.On("Status").Return(model.Status{Ok: true, Text: "Online"})

	c := newFakeContext()
	require.NoError(t, NewController(srv).Portfolio(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "💰 Total: $750.00")
}

func TestRefresh_FeedFailureShowsLastReport(t *testing.T) {
	srv := new(MockDashboardService)
	srv.On("Refresh", mock.Anything, true).Return(model.Report{}, externalApi.ErrFeedUnavailable)
	srv.On("Report").Return(testReport(), nil)
	srv.On("Status").Return(model.Status{Ok: false, Text: "Connection error"})

	c := newFakeContext()
	require.NoError(t, NewController(srv).Refresh(c))

	require.Len(t, c.sent, 1)
	text := c.sent[0].(string)
	assert.Contains(t, text, feedErrMsg)
	assert.Contains(t, text, "🔴 Connection error")
	assert.Contains(t, text, "$750.00")
}

func TestRefreshCallback_InProgress(t *testing.T) {
	srv := new(MockDashboardService)
	srv.On("Refresh", mock.Anything, true).Return(model.Report{}, service.ErrRefreshInProgress)
	srv.On("Report").Return(model.Report{}, service.ErrNoReport)

	c := newFakeContext()
	require.NoError(t, NewController(srv).RefreshCallback(c))

	assert.True(t, c.responded)
	require.Len(t, c.edited, 1)
	assert.Equal(t, inProgressMsg, c.edited[0])
}

func TestRefresh_Success(t *testing.T) {
	srv := new(MockDashboardService)
	srv.On("Refresh", mock.Anything, true).Return(testReport(), nil).Once()
	srv.On("Status").Return(model.Status{Ok: true, Text: "Online"})

	c := newFakeContext()
	require.NoError(t, NewController(srv).Refresh(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "BTC $50,000.00")
	srv.AssertExpectations(t)
}
