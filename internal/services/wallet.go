package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/denmor86/ya-cashout/internal/validators"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	Accounts storage.AccountsStorage
	CashOuts storage.CashOutStorage
	Locks    *AccountLocks
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

// Создание сервиса
func NewWallet(accounts storage.AccountsStorage, cashOuts storage.CashOutStorage, m *metrics.Metrics) *Wallet {
	return &Wallet{
		Accounts: accounts,
		CashOuts: cashOuts,
		Locks:    NewAccountLocks(),
		Metrics:  m,
		Now:      time.Now,
	}
}

// Credit - пополнение кошелька, увеличивает баланс и сумму заработанного
func (s *Wallet) Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if !validators.CheckAmount(amount) {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.Accounts.CreditWallet(ctx, models.LedgerEntry{
		AccountID:   accountID,
		Type:        models.LedgerEntryCredit,
		Amount:      amount,
		Description: description,
		CreatedAt:   s.Now(),
	})
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Errorw("Failed to credit wallet", "account", accountID, "error", err)
		}
		return nil, err
	}
	s.Metrics.Credit(amount)
	logger.Infow("Wallet credited", "account", accountID, "amount", amount.String())
	return wallet, nil
}

// Debit - списание с кошелька. Баланс уменьшается только если его достаточно,
// проверка и списание выполняются хранилищем одной операцией.
// HTTP-маршрута нет, метод вызывается другими сервисами процесса. Заявки на вывод
// списываются через DebitForCashOut тем же условным UPDATE (storage.debitTx).
func (s *Wallet) Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if !validators.CheckAmount(amount) {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.Accounts.DebitWallet(ctx, models.LedgerEntry{
		AccountID:   accountID,
		Type:        models.LedgerEntryDebit,
		Amount:      amount,
		Description: description,
		CreatedAt:   s.Now(),
	})
	if err != nil {
		return nil, s.debitError(ctx, accountID, amount, err)
	}
	return wallet, nil
}

// DebitForCashOut - списание суммы подтверждённого перевода вместе с записью заявки
func (s *Wallet) DebitForCashOut(ctx context.Context, request models.CashOutRequest) (*models.Wallet, error) {
	if !validators.CheckAmount(request.Amount) {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.CashOuts.CompleteCashOut(ctx, request)
	if err != nil {
		return nil, s.debitError(ctx, request.AccountID, request.Amount, err)
	}
	return wallet, nil
}

func (s *Wallet) GetBalance(ctx context.Context, accountID string) (*models.WalletBalance, error) {
	account, err := s.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Errorw("Failed to get account", "account", accountID, "error", err)
		}
		return nil, err
	}
	return &models.WalletBalance{
		Wallet:          models.Wallet{Balance: account.WalletBalance, TotalEarned: account.TotalEarned},
		StripeConnectID: account.StripeConnectID,
	}, nil
}

// Lock - захват счёта на время последовательности "проверка - перевод - списание"
func (s *Wallet) Lock(ctx context.Context, accountID string) (func(), error) {
	return s.Locks.Lock(ctx, accountID)
}

// debitError - преобразование ошибки хранилища, для нехватки средств подставляется текущий баланс
func (s *Wallet) debitError(ctx context.Context, accountID string, amount decimal.Decimal, err error) error {
	if !errors.Is(err, storage.ErrInsufficientFunds) {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Errorw("Failed to debit wallet", "account", accountID, "error", err)
		}
		return err
	}
	available := decimal.Zero
	if account, getErr := s.Accounts.GetAccount(ctx, accountID); getErr == nil {
		available = account.WalletBalance
	}
	logger.Warnw("Insufficient wallet balance", "account", accountID,
		"available", available.String(), "requested", amount.String())
	return &InsufficientFundsError{Available: available, Requested: amount}
}
