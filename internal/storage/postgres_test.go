package storage

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage - хранилище поверх реальной БД из DATABASE_DSN, без неё тест пропускается
func newTestStorage(t *testing.T) Storage {
	t.Helper()
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("DATABASE_DSN is not set")
	}
	require.NoError(t, logger.Initialize("warn"))

	db, err := NewDatabase(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.Initialize(ctx))
	return NewStorage(db)
}

// newFundedAccount - новый пользователь с начальным балансом
func newFundedAccount(t *testing.T, s Storage, balance int64) string {
	t.Helper()
	accountID := "acc-" + uuid.NewString()
	ctx := context.Background()
	require.NoError(t, s.Accounts.UpsertAccount(ctx, models.AccountData{AccountID: accountID, Name: "Jane Doe"}))
	_, err := s.Accounts.CreditWallet(ctx, models.LedgerEntry{
		AccountID:   accountID,
		Type:        models.LedgerEntryCredit,
		Amount:      decimal.NewFromInt(balance),
		Description: "Initial funds",
	})
	require.NoError(t, err)
	return accountID
}

func TestDebitWallet_ConcurrentOverdraw(t *testing.T) {
	s := newTestStorage(t)
	accountID := newFundedAccount(t, s, 100)

	const workers = 2
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Accounts.DebitWallet(context.Background(), models.LedgerEntry{
				AccountID: accountID,
				Type:      models.LedgerEntryDebit,
				Amount:    decimal.NewFromInt(60),
			})
		}()
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrInsufficientFunds):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	account, err := s.Accounts.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(decimal.NewFromInt(40)), "balance %s", account.WalletBalance)
	assert.True(t, account.TotalEarned.Equal(decimal.NewFromInt(100)), "total earned %s", account.TotalEarned)

	entries, err := s.Ledger.GetLedgerEntries(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.LedgerEntryCredit, entries[0].Type)
	assert.Equal(t, models.LedgerEntryDebit, entries[1].Type)
}

func TestDebitWallet_UnknownAccount(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Accounts.DebitWallet(context.Background(), models.LedgerEntry{
		AccountID: "acc-" + uuid.NewString(),
		Type:      models.LedgerEntryDebit,
		Amount:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCompleteCashOut(t *testing.T) {
	s := newTestStorage(t)
	accountID := newFundedAccount(t, s, 100)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	completed := models.CashOutRequest{
		RequestID:   uuid.NewString(),
		AccountID:   accountID,
		Amount:      decimal.RequireFromString("60.25"),
		Status:      models.CashOutStatusCompleted,
		TransferID:  "tr_1",
		RequestedAt: now,
		CompletedAt: &now,
	}
	wallet, err := s.CashOuts.CompleteCashOut(ctx, completed)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("39.75")), "balance %s", wallet.Balance)

	// второе списание не проходит, заявка и запись журнала не появляются
	overdraw := completed
	overdraw.RequestID = uuid.NewString()
	overdraw.TransferID = "tr_2"
	_, err = s.CashOuts.CompleteCashOut(ctx, overdraw)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	requests, err := s.CashOuts.GetCashOutRequests(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, completed.RequestID, requests[0].RequestID)
	assert.Equal(t, "tr_1", requests[0].TransferID)

	entries, err := s.Ledger.GetLedgerEntries(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.LedgerEntryCashOut, entries[1].Type)
	assert.Equal(t, "tr_1", entries[1].Reference)
}

func TestUpdateCashOutStatus_CompareAndSet(t *testing.T) {
	s := newTestStorage(t)
	accountID := newFundedAccount(t, s, 100)
	ctx := context.Background()

	pending := models.CashOutRequest{
		RequestID:      uuid.NewString(),
		AccountID:      accountID,
		Amount:         decimal.NewFromInt(20),
		Status:         models.CashOutStatusPending,
		FailureMessage: "Insufficient platform balance",
		RequestedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CashOuts.AddCashOutRequest(ctx, pending))

	count, err := s.CashOuts.CountCashOutRequests(ctx, models.CashOutStatusPending)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))

	completedAt := time.Now().UTC()
	cancel := models.CashOutStatusUpdate{
		AccountID:      accountID,
		RequestID:      pending.RequestID,
		ExpectedStatus: models.CashOutStatusPending,
		Status:         models.CashOutStatusCancelled,
		FailureMessage: "Cancelled by operator",
		CompletedAt:    &completedAt,
	}
	updated, err := s.CashOuts.UpdateCashOutStatus(ctx, cancel)
	require.NoError(t, err)
	assert.Equal(t, models.CashOutStatusCancelled, updated.Status)
	assert.Equal(t, "Cancelled by operator", updated.FailureMessage)
	require.NotNil(t, updated.CompletedAt)

	// статус уже не pending
	_, err = s.CashOuts.UpdateCashOutStatus(ctx, cancel)
	assert.ErrorIs(t, err, ErrStatusConflict)

	missing := cancel
	missing.RequestID = uuid.NewString()
	_, err = s.CashOuts.UpdateCashOutStatus(ctx, missing)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	// баланс при смене статуса не меняется
	account, err := s.Accounts.GetAccount(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(decimal.NewFromInt(100)), "balance %s", account.WalletBalance)
}

func TestCreditWallet_AmountAboveColumnRange(t *testing.T) {
	s := newTestStorage(t)
	accountID := newFundedAccount(t, s, 1)

	_, err := s.Accounts.CreditWallet(context.Background(), models.LedgerEntry{
		AccountID: accountID,
		Type:      models.LedgerEntryCredit,
		Amount:    decimal.NewFromFloat(1e17),
	})
	assert.Error(t, err)

	account, err := s.Accounts.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(decimal.NewFromInt(1)), "balance %s", account.WalletBalance)
}
