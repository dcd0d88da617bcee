package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-cashout/internal/client"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/denmor86/ya-cashout/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "usd"
	// префикс ключа идемпотентности перевода, повтор запроса SDK не создаёт второй перевод
	TransferKeyPrefix = "cashout-"
)

type CashOut struct {
	Wallet   WalletService
	CashOuts storage.CashOutStorage
	Accounts storage.AccountsStorage
	Ledger   storage.LedgerStorage
	Gateway  client.PaymentGateway
	Metrics  *metrics.Metrics
	Currency string
	Now      func() time.Time
	NewID    func() string
}

// Создание сервиса
func NewCashOut(wallet WalletService, s storage.Storage, gateway client.PaymentGateway, currency string, m *metrics.Metrics) *CashOut {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &CashOut{
		Wallet:   wallet,
		CashOuts: s.CashOuts,
		Accounts: s.Accounts,
		Ledger:   s.Ledger,
		Gateway:  gateway,
		Metrics:  m,
		Currency: currency,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// RequestCashOut - вывод средств из кошелька на подключённый счёт.
// Баланс уменьшается только после подтверждения перевода шлюзом.
func (s *CashOut) RequestCashOut(ctx context.Context, accountID string, amount decimal.Decimal) (*models.CashOutResult, error) {
	// 1. Проверка суммы
	if !validators.CheckAmount(amount) {
		s.Metrics.CashOut(metrics.ResultRejected, amount)
		return nil, ErrInvalidAmount
	}

	// проверка баланса, перевод и списание по одному счёту выполняются последовательно
	unlock, err := s.Wallet.Lock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// 2-3. Счёт пользователя и подключённый счёт в шлюзе
	balance, err := s.Wallet.GetBalance(ctx, accountID)
	if err != nil {
		s.reject(err, amount)
		return nil, err
	}
	if balance.StripeConnectID == "" {
		s.Metrics.CashOut(metrics.ResultRejected, amount)
		return nil, ErrNoPayoutAccount
	}

	// 4. Достаточно ли средств
	if amount.GreaterThan(balance.Wallet.Balance) {
		s.Metrics.CashOut(metrics.ResultRejected, amount)
		return nil, &InsufficientFundsError{Available: balance.Wallet.Balance, Requested: amount}
	}

	// 5. Разрешены ли выплаты
	status, err := s.Gateway.GetAccountStatus(ctx, balance.StripeConnectID)
	if err != nil {
		logger.Errorw("Failed to get payout account status", "account", accountID, "error", err)
		s.reject(err, amount)
		return nil, err
	}
	if !status.PayoutsEnabled {
		s.Metrics.CashOut(metrics.ResultRejected, amount)
		return nil, &PayoutsNotEnabledError{Requirements: status.Requirements}
	}

	// 6. Перевод. После отправки отключение клиента не должно прерывать запись результата.
	ctx = context.WithoutCancel(ctx)
	request := models.CashOutRequest{
		RequestID:   s.NewID(),
		AccountID:   accountID,
		Amount:      amount,
		RequestedAt: s.Now(),
	}
	transfer, err := s.Gateway.CreateTransfer(ctx, models.TransferRequest{
		AccountID:      balance.StripeConnectID,
		Amount:         amount,
		Currency:       s.Currency,
		Description:    fmt.Sprintf("Cash out for account %s", accountID),
		IdempotencyKey: TransferKeyPrefix + request.RequestID,
	})
	if err != nil {
		// 7. Заявка остаётся на ручной разбор, баланс не меняется
		return nil, s.pending(ctx, request, gatewayMessage(err), err)
	}

	request.Status = models.CashOutStatusCompleted
	request.TransferID = transfer.ID
	completedAt := s.Now()
	request.CompletedAt = &completedAt

	wallet, err := s.Wallet.DebitForCashOut(ctx, request)
	if err != nil {
		// перевод уже выполнен, списать не удалось: фиксируем заявку с идентификатором перевода
		logger.Errorw("Transfer succeeded but wallet debit failed", "account", accountID,
			"request", request.RequestID, "transfer", transfer.ID, "error", err)
		request.CompletedAt = nil
		message := fmt.Sprintf("transfer %s succeeded but wallet debit failed: %v", transfer.ID, err)
		return nil, s.pending(ctx, request, message, err)
	}

	s.Metrics.CashOut(metrics.ResultCompleted, amount)
	logger.Infow("Cash out completed", "account", accountID, "request", request.RequestID,
		"transfer", transfer.ID, "amount", amount.String())
	return &models.CashOutResult{Request: request, Transfer: *transfer, NewBalance: wallet.Balance}, nil
}

// GetCashOutHistory - заявки пользователя в порядке создания и сумма выведенных средств
func (s *CashOut) GetCashOutHistory(ctx context.Context, accountID string) (*models.CashOutHistory, error) {
	if _, err := s.Accounts.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	requests, err := s.CashOuts.GetCashOutRequests(ctx, accountID)
	if err != nil {
		logger.Errorw("Failed to get cash-out requests", "account", accountID, "error", err)
		return nil, err
	}
	history := &models.CashOutHistory{Requests: requests, TotalCashedOut: decimal.Zero}
	for _, request := range requests {
		if request.Status == models.CashOutStatusCompleted {
			history.TotalCashedOut = history.TotalCashedOut.Add(request.Amount)
		}
	}
	return history, nil
}

// PayoutBalance - выплата оператором с подключённого счёта, кошелёк и заявки не меняются.
// Выплата фиксируется в журнале отдельным типом записи.
func (s *CashOut) PayoutBalance(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*models.Payout, error) {
	if !validators.CheckAmount(amount) {
		return nil, ErrInvalidAmount
	}
	account, err := s.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.Onboarded() {
		return nil, ErrNoPayoutAccount
	}
	if description == "" {
		description = "Operator payout"
	}

	payout, err := s.Gateway.CreatePayout(ctx, models.PayoutRequest{
		AccountID:   account.StripeConnectID,
		Amount:      amount,
		Currency:    s.Currency,
		Description: description,
	})
	if err != nil {
		logger.Errorw("Failed to create payout", "account", accountID, "error", err)
		return nil, err
	}
	s.Metrics.OperatorPayout()

	err = s.Ledger.AddLedgerEntry(context.WithoutCancel(ctx), models.LedgerEntry{
		AccountID:   accountID,
		Type:        models.LedgerEntryPayout,
		Amount:      amount,
		Description: description,
		Reference:   payout.ID,
		CreatedAt:   s.Now(),
	})
	if err != nil {
		// выплата уже создана в шлюзе, возвращаем её, расхождение видно в логе
		logger.Errorw("Failed to record payout in ledger", "account", accountID, "payout", payout.ID, "error", err)
	}
	logger.Infow("Operator payout created", "account", accountID, "payout", payout.ID, "amount", amount.String())
	return payout, nil
}

// pending - сохранение заявки, ожидающей ручного разбора
func (s *CashOut) pending(ctx context.Context, request models.CashOutRequest, message string, cause error) error {
	request.Status = models.CashOutStatusPending
	request.FailureMessage = message
	if err := s.CashOuts.AddCashOutRequest(ctx, request); err != nil {
		logger.Errorw("Failed to save pending cash-out request", "account", request.AccountID,
			"request", request.RequestID, "error", err)
		s.Metrics.CashOut(metrics.ResultInternalFailed, request.Amount)
		return errors.Join(cause, err)
	}
	s.Metrics.CashOut(metrics.ResultPendingReview, request.Amount)
	logger.Warnw("Cash out is pending manual review", "account", request.AccountID,
		"request", request.RequestID, "reason", message)
	return &TransferFailedError{Request: request, Cause: cause}
}

func (s *CashOut) reject(err error, amount decimal.Decimal) {
	if errors.Is(err, storage.ErrAccountNotFound) {
		s.Metrics.CashOut(metrics.ResultRejected, amount)
		return
	}
	s.Metrics.CashOut(metrics.ResultInternalFailed, amount)
}

// gatewayMessage - сообщение шлюза без изменений
func gatewayMessage(err error) string {
	var gwErr *client.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}
