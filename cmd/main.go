package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KotFed0t/crypto_dashboard/config"
	"github.com/KotFed0t/crypto_dashboard/data"
	"github.com/KotFed0t/crypto_dashboard/data/alertbus"
	"github.com/KotFed0t/crypto_dashboard/internal/externalApi/coingeckoApi"
	"github.com/KotFed0t/crypto_dashboard/internal/portfolioStore"
	"github.com/KotFed0t/crypto_dashboard/internal/reportGenerator/consoleGenerator"
	"github.com/KotFed0t/crypto_dashboard/internal/reportGenerator/xslsxGenerator"
	"github.com/KotFed0t/crypto_dashboard/internal/scheduler"
	"github.com/KotFed0t/crypto_dashboard/internal/service/dashboardService"
	"github.com/KotFed0t/crypto_dashboard/internal/tgbot"
	"github.com/KotFed0t/crypto_dashboard/internal/transport/telegram"
	"github.com/KotFed0t/crypto_dashboard/internal/transport/web"
	"github.com/KotFed0t/crypto_dashboard/internal/webserver"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	store := portfolioStore.MustNew(portfolioStore.DefaultHoldings())

	coingeckoApiClient := coingeckoApi.New(cfg)

	var publishers []dashboardService.AlertPublisher

	if cfg.Redis.Host != "" {
		redisClient := data.NewRedisClient(cfg)
		defer redisClient.Close()

		publishers = append(publishers, alertbus.NewRedisAlertBus(redisClient, cfg.Redis.AlertsChannel))
	}

	var console dashboardService.ConsolePrinter
	if cfg.ConsoleReport {
		console = consoleGenerator.New(os.Stdout, "dark")
	}

	var tgBot *tgbot.TGBot
	if cfg.Telegram.Token != "" {
		tgBot = tgbot.New(cfg)
		if cfg.Telegram.AlertChatID != 0 {
			publishers = append(publishers, tgBot)
		}
	}

	dashboardSrv := dashboardService.New(store, coingeckoApiClient, publishers, console)

	sched := scheduler.New()
	sched.NewIntervalJob("refresh prices", dashboardSrv.RefreshJob, cfg.Jobs.RefreshInterval, true)
	sched.Start()
	defer sched.Stop()

	gin.SetMode(cfg.HTTP.GinMode)
	webController := web.NewController(dashboardSrv, xslsxGenerator.New(), int(cfg.Jobs.RefreshInterval.Seconds()))
	webSrv := webserver.New(cfg, web.NewRouter(webController))
	webSrv.Start()
	defer webSrv.Stop()

	if tgBot != nil {
		tgBot.Start(telegram.NewController(dashboardSrv))
		defer tgBot.Stop()
	}

	// Waiting interruption signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
