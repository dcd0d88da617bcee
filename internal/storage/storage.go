package storage

import (
	"context"
	"errors"

	"github.com/denmor86/ya-cashout/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

type AccountsStorage interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	UpsertAccount(ctx context.Context, account models.AccountData) error
	SetStripeConnectID(ctx context.Context, accountID string, connectID string) error
	CreditWallet(ctx context.Context, entry models.LedgerEntry) (*models.Wallet, error)
	DebitWallet(ctx context.Context, entry models.LedgerEntry) (*models.Wallet, error)
}

type CashOutStorage interface {
	CompleteCashOut(ctx context.Context, request models.CashOutRequest) (*models.Wallet, error)
	AddCashOutRequest(ctx context.Context, request models.CashOutRequest) error
	GetCashOutRequest(ctx context.Context, accountID string, requestID string) (*models.CashOutRequest, error)
	GetCashOutRequests(ctx context.Context, accountID string) ([]models.CashOutRequest, error)
	ListCashOutRequests(ctx context.Context, status string) ([]models.AccountCashOutRequest, error)
	UpdateCashOutStatus(ctx context.Context, update models.CashOutStatusUpdate) (*models.CashOutRequest, error)
	CountCashOutRequests(ctx context.Context, status string) (int64, error)
}

type LedgerStorage interface {
	AddLedgerEntry(ctx context.Context, entry models.LedgerEntry) error
	GetLedgerEntries(ctx context.Context, accountID string) ([]models.LedgerEntry, error)
}

type Storage struct {
	Accounts AccountsStorage
	CashOuts CashOutStorage
	Ledger   LedgerStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Accounts: NewAccountsStorage(db), CashOuts: NewCashOutStorage(db), Ledger: NewLedgerStorage(db)}
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrRequestNotFound = errors.New("cash-out request not found")

	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrStatusConflict    = errors.New("cash-out request status changed concurrently")
)
