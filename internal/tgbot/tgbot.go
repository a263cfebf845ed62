package tgbot

import (
	"context"
	"log/slog"

	"github.com/KotFed0t/crypto_dashboard/config"
	"github.com/KotFed0t/crypto_dashboard/internal/converter/telebotConverter"
	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/internal/model/tgCallback"
	"github.com/KotFed0t/crypto_dashboard/internal/transport/telegram"
	customMW "github.com/KotFed0t/crypto_dashboard/internal/transport/telegram/middleware"
	"github.com/KotFed0t/crypto_dashboard/utils"
	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type TGBot struct {
	bot         *tele.Bot
	ctrl        *telegram.Controller
	alertChatID int64
}

func New(cfg *config.Config) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, alertChatID: cfg.Telegram.AlertChatID}
}

// Start serves updates through ctrl. The bot can publish alerts before Start.
func (b *TGBot) Start(ctrl *telegram.Controller) {
	b.ctrl = ctrl
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	b.bot.Handle("/start", b.ctrl.Start)

	b.bot.Handle("/portfolio", b.ctrl.Portfolio)

	b.bot.Handle("/refresh", b.ctrl.Refresh)

	b.bot.Handle(&tele.Btn{Unique: tgCallback.Refresh}, b.ctrl.RefreshCallback)
}

// PublishAlerts pushes cycle alerts to the configured chat.
func (b *TGBot) PublishAlerts(ctx context.Context, alerts []model.Alert) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	_, err := b.bot.Send(tele.ChatID(b.alertChatID), telebotConverter.AlertsText(alerts))
	if err != nil {
		slog.Error("can't send alerts to telegram", slog.String("rqID", rqID), slog.Int64("chatID", b.alertChatID), slog.String("err", err.Error()))
		return err
	}

	return nil
}
