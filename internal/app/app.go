package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-cashout/internal/client"
	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/network/router"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/denmor86/ya-cashout/internal/worker"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - сборка сервисов поверх хранилища и платёжного шлюза
func NewRouter(config config.Config, db *storage.Database, gateway client.PaymentGateway, m *metrics.Metrics) *router.Router {
	s := storage.NewStorage(db)
	wallet := services.NewWallet(s.Accounts, s.CashOuts, m)

	return &router.Router{
		Identity:       services.NewIdentity(config),
		Wallet:         wallet,
		CashOut:        services.NewCashOut(wallet, s, gateway, config.Gateway.Currency, m),
		Connect:        services.NewConnect(s.Accounts, gateway, config.Gateway.FrontendURL),
		Reconciliation: services.NewReconciliation(s, m),
		Metrics:        m,
		Health:         db.Pool.Ping,
	}
}

func Run(config config.Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		return err
	}

	m := metrics.NewMetrics()
	gateway := client.NewGuardedGateway(
		client.NewStripeGateway(config.Gateway.SecretKey),
		client.BreakerSettings{
			Name:             "stripe",
			FailureThreshold: config.Gateway.FailureThreshold,
			OpenTimeout:      config.Gateway.OpenTimeout,
		},
		m,
	)
	router := NewRouter(config, db, gateway, m)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера
	monitor := worker.NewPendingMonitor(storage.NewCashOutStorage(db), m, config.Monitor.PollInterval)
	monitor.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infow("Starting server", "addr", config.Server.ListenAddr, "currency", config.Gateway.Currency)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
		logger.Info("Shutdown server")
	case err = <-serverErr:
		logger.Errorw("Server failed", "error", err)
	}
	monitor.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Failed to shutdown server", "error", err)
	}
	logger.Info("Server stopped")
	return err
}
