package services

import (
	"context"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// WalletService - единственный владелец полей баланса
type WalletService interface {
	Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Wallet, error)
	Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Wallet, error)
	DebitForCashOut(ctx context.Context, request models.CashOutRequest) (*models.Wallet, error)
	GetBalance(ctx context.Context, accountID string) (*models.WalletBalance, error)
	Lock(ctx context.Context, accountID string) (func(), error)
}

type CashOutService interface {
	RequestCashOut(ctx context.Context, accountID string, amount decimal.Decimal) (*models.CashOutResult, error)
	GetCashOutHistory(ctx context.Context, accountID string) (*models.CashOutHistory, error)
	PayoutBalance(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Payout, error)
}

type ConnectService interface {
	CreateConnectAccount(ctx context.Context, accountID string, req models.ConnectAccountRequest) (*models.GatewayAccount, error)
	GetOnboardingLink(ctx context.Context, accountID string, refreshURL string, returnURL string) (string, error)
	GetAccountDetails(ctx context.Context, accountID string) (*models.GatewayAccount, error)
}

// ReconciliationService - операции администратора
type ReconciliationService interface {
	GetAllCashOutRequests(ctx context.Context, status string) ([]models.AccountCashOutRequest, error)
	UpdateCashOutRequestStatus(ctx context.Context, accountID string, requestID string, status string, failureMessage string) (*models.CashOutRequest, error)
	GetLedger(ctx context.Context, accountID string) ([]models.LedgerEntry, error)
	SyncAccount(ctx context.Context, account models.AccountData) error
}
