package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	gwmocks "github.com/denmor86/ya-cashout/internal/client/mocks"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryLedger - хранилище в памяти с той же семантикой условного списания, что и в Postgres
type memoryLedger struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	requests map[string][]models.CashOutRequest
	entries  []models.LedgerEntry
}

func newMemoryLedger(accounts ...models.Account) *memoryLedger {
	l := &memoryLedger{accounts: map[string]*models.Account{}, requests: map[string][]models.CashOutRequest{}}
	for _, account := range accounts {
		l.accounts[account.AccountID] = &account
	}
	return l
}

func (l *memoryLedger) GetAccount(_ context.Context, accountID string) (*models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[accountID]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (l *memoryLedger) UpsertAccount(_ context.Context, data models.AccountData) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if account, ok := l.accounts[data.AccountID]; ok {
		account.Name, account.Email = data.Name, data.Email
		return nil
	}
	l.accounts[data.AccountID] = &models.Account{AccountID: data.AccountID, Name: data.Name, Email: data.Email}
	return nil
}

func (l *memoryLedger) SetStripeConnectID(_ context.Context, accountID string, connectID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[accountID]
	if !ok {
		return storage.ErrAccountNotFound
	}
	if account.StripeConnectID != "" {
		return storage.ErrAlreadyExists
	}
	account.StripeConnectID = connectID
	return nil
}

func (l *memoryLedger) CreditWallet(_ context.Context, entry models.LedgerEntry) (*models.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[entry.AccountID]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	account.WalletBalance = account.WalletBalance.Add(entry.Amount)
	account.TotalEarned = account.TotalEarned.Add(entry.Amount)
	l.entries = append(l.entries, entry)
	return &models.Wallet{Balance: account.WalletBalance, TotalEarned: account.TotalEarned}, nil
}

func (l *memoryLedger) DebitWallet(_ context.Context, entry models.LedgerEntry) (*models.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	wallet, err := l.debit(entry.AccountID, entry.Amount)
	if err != nil {
		return nil, err
	}
	l.entries = append(l.entries, entry)
	return wallet, nil
}

func (l *memoryLedger) CompleteCashOut(_ context.Context, request models.CashOutRequest) (*models.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	wallet, err := l.debit(request.AccountID, request.Amount)
	if err != nil {
		return nil, err
	}
	l.requests[request.AccountID] = append(l.requests[request.AccountID], request)
	l.entries = append(l.entries, models.LedgerEntry{
		AccountID: request.AccountID,
		Type:      models.LedgerEntryCashOut,
		Amount:    request.Amount,
		Reference: request.TransferID,
	})
	return wallet, nil
}

func (l *memoryLedger) AddCashOutRequest(_ context.Context, request models.CashOutRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests[request.AccountID] = append(l.requests[request.AccountID], request)
	return nil
}

func (l *memoryLedger) GetCashOutRequest(_ context.Context, accountID string, requestID string) (*models.CashOutRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, request := range l.requests[accountID] {
		if request.RequestID == requestID {
			return &request, nil
		}
	}
	return nil, storage.ErrRequestNotFound
}

func (l *memoryLedger) GetCashOutRequests(_ context.Context, accountID string) ([]models.CashOutRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.CashOutRequest(nil), l.requests[accountID]...), nil
}

func (l *memoryLedger) ListCashOutRequests(_ context.Context, status string) ([]models.AccountCashOutRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var result []models.AccountCashOutRequest
	for accountID, requests := range l.requests {
		for _, request := range requests {
			if status == "" || request.Status == status {
				account := l.accounts[accountID]
				result = append(result, models.AccountCashOutRequest{CashOutRequest: request, UserName: account.Name, UserEmail: account.Email})
			}
		}
	}
	return result, nil
}

func (l *memoryLedger) UpdateCashOutStatus(_ context.Context, update models.CashOutStatusUpdate) (*models.CashOutRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, request := range l.requests[update.AccountID] {
		if request.RequestID != update.RequestID {
			continue
		}
		if request.Status != update.ExpectedStatus {
			return nil, storage.ErrStatusConflict
		}
		request.Status = update.Status
		request.FailureMessage = update.FailureMessage
		request.CompletedAt = update.CompletedAt
		l.requests[update.AccountID][i] = request
		return &request, nil
	}
	return nil, storage.ErrRequestNotFound
}

func (l *memoryLedger) CountCashOutRequests(ctx context.Context, status string) (int64, error) {
	requests, _ := l.ListCashOutRequests(ctx, status)
	return int64(len(requests)), nil
}

func (l *memoryLedger) debit(accountID string, amount decimal.Decimal) (*models.Wallet, error) {
	account, ok := l.accounts[accountID]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	if account.WalletBalance.LessThan(amount) {
		return nil, storage.ErrInsufficientFunds
	}
	account.WalletBalance = account.WalletBalance.Sub(amount)
	return &models.Wallet{Balance: account.WalletBalance, TotalEarned: account.TotalEarned}, nil
}

func (l *memoryLedger) balance(accountID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accounts[accountID].WalletBalance
}

func newConcurrentGateway(t *testing.T) *gwmocks.MockPaymentGateway {
	ctrl := gomock.NewController(t)
	gateway := gwmocks.NewMockPaymentGateway(ctrl)
	gateway.EXPECT().GetAccountStatus(gomock.Any(), "acct_1").
		Return(&models.GatewayAccount{ID: "acct_1", PayoutsEnabled: true}, nil).AnyTimes()
	gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.TransferRequest) (*models.Transfer, error) {
			// сетевая задержка шлюза, чтобы запросы пересекались
			time.Sleep(20 * time.Millisecond)
			return &models.Transfer{ID: "tr_" + uuid.NewString(), Amount: req.Amount, Status: "paid", Created: time.Now()}, nil
		}).AnyTimes()
	return gateway
}

func runConcurrentCashOuts(services []*CashOut, amount decimal.Decimal) []error {
	var wg sync.WaitGroup
	errs := make([]error, len(services))
	for i, service := range services {
		wg.Add(1)
		go func(i int, service *CashOut) {
			defer wg.Done()
			_, errs[i] = service.RequestCashOut(context.Background(), "acc-1", amount)
		}(i, service)
	}
	wg.Wait()
	return errs
}

func TestCashOut_ConcurrentRequests_SingleInstance(t *testing.T) {
	initLogger(t)

	ledger := newMemoryLedger(models.Account{AccountID: "acc-1", WalletBalance: decimal.NewFromInt(100), TotalEarned: decimal.NewFromInt(100), StripeConnectID: "acct_1"})
	s := storage.Storage{Accounts: ledger, CashOuts: ledger}
	service := NewCashOut(NewWallet(ledger, ledger, nil), s, newConcurrentGateway(t), "usd", nil)

	errs := runConcurrentCashOuts([]*CashOut{service, service}, decimal.NewFromInt(60))

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientFunds):
			rejected++
			var insufficient *InsufficientFundsError
			require.ErrorAs(t, err, &insufficient)
			assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(40)), "check must see the updated balance")
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.True(t, ledger.balance("acc-1").Equal(decimal.NewFromInt(40)), "balance: %s", ledger.balance("acc-1"))

	requests, err := ledger.GetCashOutRequests(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.CashOutStatusCompleted, requests[0].Status)
}

// Два экземпляра сервиса (разные блокировки) над общим хранилищем:
// перерасход предотвращает условное списание в хранилище.
func TestCashOut_ConcurrentRequests_SeparateInstances(t *testing.T) {
	initLogger(t)

	ledger := newMemoryLedger(models.Account{AccountID: "acc-1", WalletBalance: decimal.NewFromInt(100), TotalEarned: decimal.NewFromInt(100), StripeConnectID: "acct_1"})
	s := storage.Storage{Accounts: ledger, CashOuts: ledger}
	gateway := newConcurrentGateway(t)
	first := NewCashOut(NewWallet(ledger, ledger, nil), s, gateway, "usd", nil)
	second := NewCashOut(NewWallet(ledger, ledger, nil), s, gateway, "usd", nil)

	errs := runConcurrentCashOuts([]*CashOut{first, second}, decimal.NewFromInt(60))

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrTransferFailed), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.True(t, ledger.balance("acc-1").Equal(decimal.NewFromInt(40)), "balance: %s", ledger.balance("acc-1"))

	completed, err := ledger.ListCashOutRequests(context.Background(), models.CashOutStatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)
}

func TestWallet_InvariantsOverSequence(t *testing.T) {
	initLogger(t)

	ledger := newMemoryLedger(models.Account{AccountID: "acc-1"})
	wallet := NewWallet(ledger, ledger, nil)
	ctx := context.Background()

	var lastEarned decimal.Decimal
	operations := []struct {
		credit bool
		amount int64
	}{
		{true, 100}, {false, 30}, {false, 80}, {true, 15}, {false, 85}, {false, 1}, {true, 10},
	}
	for _, op := range operations {
		if op.credit {
			_, err := wallet.Credit(ctx, "acc-1", decimal.NewFromInt(op.amount), "earned")
			require.NoError(t, err)
		} else {
			_, err := wallet.Debit(ctx, "acc-1", decimal.NewFromInt(op.amount), "spent")
			if err != nil {
				require.ErrorIs(t, err, ErrInsufficientFunds)
			}
		}
		account, err := ledger.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.False(t, account.WalletBalance.IsNegative(), "balance must never be negative")
		assert.True(t, account.TotalEarned.GreaterThanOrEqual(lastEarned), "total earned must not decrease")
		lastEarned = account.TotalEarned
	}
	assert.True(t, ledger.balance("acc-1").Equal(decimal.NewFromInt(10)))
}
