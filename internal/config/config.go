package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr       string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN      string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"secret"`
	StripeSecretKey  string        `env:"STRIPE_SECRET_KEY" envDefault:""`
	Currency         string        `env:"PAYOUT_CURRENCY" envDefault:"usd"`
	FrontendURL      string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	PollInterval     time.Duration `env:"PENDING_POLL_INTERVAL" envDefault:"1m"`
	FailureThreshold int           `env:"GATEWAY_FAILURE_THRESHOLD" envDefault:"5"`
	OpenTimeout      time.Duration `env:"GATEWAY_OPEN_TIMEOUT" envDefault:"30s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// GatewayConfig модель настроек работы с платёжным шлюзом
type GatewayConfig struct {
	SecretKey        string
	Currency         string
	FrontendURL      string
	FailureThreshold int
	OpenTimeout      time.Duration
}

// MonitorConfig модель настроек наблюдения за заявками на ручном разборе
type MonitorConfig struct {
	PollInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Monitor MonitorConfig
}

var ErrNoGatewayKey = errors.New("payment gateway secret key is not set")

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		stripeKey = pflag.StringP("stripe_key", "k", args.StripeSecretKey, "Stripe secret API key")
		currency  = pflag.StringP("currency", "c", args.Currency, "Payout currency (ISO code, lower case)")
		frontend  = pflag.StringP("frontend", "f", args.FrontendURL, "Frontend base URL for onboarding redirects")
		poll      = pflag.DurationP("poll", "p", args.PollInterval, "Pending cash-out monitor interval")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Gateway: GatewayConfig{
			SecretKey:        *stripeKey,
			Currency:         *currency,
			FrontendURL:      *frontend,
			FailureThreshold: args.FailureThreshold,
			OpenTimeout:      args.OpenTimeout,
		},
		Monitor: MonitorConfig{
			PollInterval: *poll,
		},
	}
}

// Validate проверяет обязательные параметры перед стартом сервиса
func (c Config) Validate() error {
	if c.Gateway.SecretKey == "" {
		return ErrNoGatewayKey
	}
	if c.Server.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Gateway: GatewayConfig{
			Currency:         "usd",
			FrontendURL:      "http://localhost:3000",
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
		},
		Monitor: MonitorConfig{
			PollInterval: time.Minute,
		},
	}
}
