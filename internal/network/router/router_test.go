package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/helpers"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/denmor86/ya-cashout/internal/services/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router         *Router
	wallet         *mocks.MockWalletService
	reconciliation *mocks.MockReconciliationService
	identity       *services.Identity
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	cfg := config.DefaultConfig()
	require.NoError(t, logger.Initialize(cfg.Server.LogLevel))

	ctrl := gomock.NewController(t)
	f := &routerFixture{
		wallet:         mocks.NewMockWalletService(ctrl),
		reconciliation: mocks.NewMockReconciliationService(ctrl),
		identity:       services.NewIdentity(cfg),
	}
	f.router = &Router{
		Identity:       f.identity,
		Wallet:         f.wallet,
		CashOut:        mocks.NewMockCashOutService(ctrl),
		Connect:        mocks.NewMockConnectService(ctrl),
		Reconciliation: f.reconciliation,
		Metrics:        metrics.NewMetrics(),
	}
	return f
}

func (f *routerFixture) do(t *testing.T, method string, target string, subject string, role string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if subject != "" {
		token, err := f.identity.GenerateJWT(subject, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.HandleRouter().ServeHTTP(rec, req)
	return rec
}

func walletBalance() *models.WalletBalance {
	return &models.WalletBalance{Wallet: models.Wallet{Balance: decimal.NewFromInt(10), TotalEarned: decimal.NewFromInt(10)}}
}

func TestRouterAccountAccess(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("No token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/wallet/acc-1", "", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Own account", func(t *testing.T) {
		f.wallet.EXPECT().GetBalance(gomock.Any(), "acc-1").Return(walletBalance(), nil)
		rec := f.do(t, http.MethodGet, "/api/wallet/acc-1", "acc-1", helpers.RoleUser, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Another account", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/wallet/acc-1", "acc-2", helpers.RoleUser, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Access denied"}`, rec.Body.String())
	})

	t.Run("Admin reads any account", func(t *testing.T) {
		f.wallet.EXPECT().GetBalance(gomock.Any(), "acc-1").Return(walletBalance(), nil)
		rec := f.do(t, http.MethodGet, "/api/wallet/acc-1", "operator", helpers.RoleAdmin, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := config.DefaultConfig()
		other.Server.JWTSecret = "other"
		token, err := services.NewIdentity(other).GenerateJWT("acc-1", helpers.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/wallet/acc-1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		f.router.HandleRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouterAdminOnly(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("User cannot add funds", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/wallet/add-funds/acc-1", "acc-1", helpers.RoleUser, `{"amount":10}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("User cannot list requests", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/admin/cash-out-requests", "acc-1", helpers.RoleUser, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin lists requests", func(t *testing.T) {
		f.reconciliation.EXPECT().GetAllCashOutRequests(gomock.Any(), "").Return(nil, nil)
		rec := f.do(t, http.MethodGet, "/api/admin/cash-out-requests", "operator", helpers.RoleAdmin, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"requests":[],"total":0}`, rec.Body.String())
	})

	t.Run("Admin adds funds", func(t *testing.T) {
		f.wallet.EXPECT().Credit(gomock.Any(), "acc-1", gomock.Any(), "Funds added to wallet").
			Return(&models.Wallet{Balance: decimal.NewFromInt(10), TotalEarned: decimal.NewFromInt(10)}, nil)
		rec := f.do(t, http.MethodPost, "/api/wallet/add-funds/acc-1", "operator", helpers.RoleAdmin, `{"amount":10}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/health", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	f.router.Health = func(ctx context.Context) error { return errors.New("connection refused") }
	rec = f.do(t, http.MethodGet, "/api/health", "", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = f.do(t, http.MethodGet, "/metrics", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
