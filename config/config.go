package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	ConsoleReport bool   `env:"CONSOLE_REPORT" envDefault:"false"`
	HTTP          HTTP
	Telegram      Telegram
	Redis         Redis
	API           API
	Jobs          Jobs
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
}

// Telegram bot is started only when Token is set.
type Telegram struct {
	Token       string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout  time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
	AlertChatID int64         `env:"TELEGRAM_ALERT_CHAT_ID" envDefault:"0"`
}

// Redis alert bus is enabled only when Host is set.
type Redis struct {
	Host          string `env:"REDIS_HOST" envDefault:""`
	Port          int    `env:"REDIS_PORT" envDefault:"6379"`
	Password      string `env:"REDIS_PASSWORD" envDefault:""`
	DB            int    `env:"REDIS_DB" envDefault:"0"`
	AlertsChannel string `env:"REDIS_ALERTS_CHANNEL" envDefault:"portfolio:alerts"`
}

type API struct {
	Debug        bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout      time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	CoinGeckoApi CoinGeckoApi
}

type CoinGeckoApi struct {
	Url string `env:"COINGECKO_API_URL" envDefault:"https://api.coingecko.com/api/v3"`
}

type Jobs struct {
	RefreshInterval time.Duration `env:"REFRESH_JOB_INTERVAL" envDefault:"30s"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Load()
	if err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	return cfg, nil
}
