package router

import (
	"context"

	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/network/handlers"
	"github.com/denmor86/ya-cashout/internal/network/middleware"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Identity       *services.Identity
	Wallet         services.WalletService
	CashOut        services.CashOutService
	Connect        services.ConnectService
	Reconciliation services.ReconciliationService
	Metrics        *metrics.Metrics
	Health         func(ctx context.Context) error
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	if router.Metrics != nil {
		r.Handle("/metrics", router.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/health", handlers.HealthHandler(router.health))

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			// параметры маршрута доступны только во встроенных middleware
			own := r.With(middleware.AccountAccess(handlers.ParamAccountID))
			own.Post("/connect-account/{accountId}", handlers.CreateConnectAccountHandler(router.Connect))
			own.Post("/connect-account-link/{accountId}", handlers.ConnectAccountLinkHandler(router.Connect))
			own.Get("/connect-account-details/{accountId}", handlers.ConnectAccountDetailsHandler(router.Connect))
			own.Get("/wallet/{accountId}", handlers.GetWalletHandler(router.Wallet))
			own.Post("/cash-out/{accountId}", handlers.CashOutHandler(router.CashOut))
			own.Get("/cash-out-history/{accountId}", handlers.CashOutHistoryHandler(router.CashOut))

			operator := r.With(middleware.AdminOnly)
			operator.Post("/wallet/add-funds/{accountId}", handlers.AddFundsHandler(router.Wallet))
			operator.Post("/payout/{accountId}", handlers.PayoutHandler(router.CashOut))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/cash-out-requests", handlers.ListCashOutRequestsHandler(router.Reconciliation))
				r.Patch("/cash-out-request/{accountId}/{requestId}", handlers.UpdateCashOutRequestHandler(router.Reconciliation))
				r.Get("/ledger/{accountId}", handlers.LedgerHandler(router.Reconciliation))
				r.Put("/accounts/{accountId}", handlers.SyncAccountHandler(router.Reconciliation))
			})
		})
	})
	return r
}

func (router *Router) health(ctx context.Context) error {
	if router.Health == nil {
		return nil
	}
	return router.Health(ctx)
}
