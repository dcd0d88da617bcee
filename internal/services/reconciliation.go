package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/denmor86/ya-cashout/internal/validators"
	"github.com/sethvargo/go-retry"
)

const (
	statusUpdateAttempts = 3
	statusUpdateBackoff  = 20 * time.Millisecond
)

type Reconciliation struct {
	Accounts storage.AccountsStorage
	CashOuts storage.CashOutStorage
	Ledger   storage.LedgerStorage
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

// Создание сервиса
func NewReconciliation(s storage.Storage, m *metrics.Metrics) *Reconciliation {
	return &Reconciliation{
		Accounts: s.Accounts,
		CashOuts: s.CashOuts,
		Ledger:   s.Ledger,
		Metrics:  m,
		Now:      time.Now,
	}
}

// GetAllCashOutRequests - заявки всех пользователей, при необходимости с фильтром по статусу.
// Порядок между счетами не гарантируется.
func (s *Reconciliation) GetAllCashOutRequests(ctx context.Context, status string) ([]models.AccountCashOutRequest, error) {
	if status != "" && !validators.CheckStatus(status) {
		return nil, ErrInvalidStatus
	}
	requests, err := s.CashOuts.ListCashOutRequests(ctx, status)
	if err != nil {
		logger.Errorw("Failed to list cash-out requests", "status", status, "error", err)
		return nil, err
	}
	return requests, nil
}

// UpdateCashOutRequestStatus - ручная смена статуса заявки администратором.
// Выводит заявку из pending в любой статус, баланс кошелька не меняется.
// Статус меняется через compare-and-set, при конкурентном изменении попытка повторяется.
func (s *Reconciliation) UpdateCashOutRequestStatus(ctx context.Context, accountID string, requestID string,
	status string, failureMessage string) (*models.CashOutRequest, error) {
	if !validators.CheckStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !validators.CheckRequestID(requestID) {
		return nil, ErrRequestNotFound
	}

	var updated *models.CashOutRequest
	backoff := retry.WithMaxRetries(statusUpdateAttempts, retry.NewConstant(statusUpdateBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		current, err := s.CashOuts.GetCashOutRequest(ctx, accountID, requestID)
		if err != nil {
			return err
		}
		if current.Status == status {
			updated = current
			return nil
		}
		if current.Terminal() {
			return ErrInvalidTransition
		}

		update := models.CashOutStatusUpdate{
			AccountID:      accountID,
			RequestID:      requestID,
			ExpectedStatus: current.Status,
			Status:         status,
			FailureMessage: current.FailureMessage,
		}
		if status == models.CashOutStatusCompleted {
			completedAt := s.Now()
			update.CompletedAt = &completedAt
		}
		if status == models.CashOutStatusFailed && strings.TrimSpace(failureMessage) != "" {
			update.FailureMessage = failureMessage
		}

		updated, err = s.CashOuts.UpdateCashOutStatus(ctx, update)
		if errors.Is(err, storage.ErrStatusConflict) {
			logger.Warnw("Cash-out request changed concurrently, retrying", "account", accountID, "request", requestID)
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		s.Metrics.StatusOverride(status)
		logger.Infow("Cash-out request status changed by administrator", "account", accountID,
			"request", requestID, "from", current.Status, "to", status)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) && !errors.Is(err, ErrInvalidTransition) {
			logger.Errorw("Failed to update cash-out request", "account", accountID, "request", requestID, "error", err)
		}
		return nil, err
	}
	return updated, nil
}

// GetLedger - журнал движения средств по счёту, включая выплаты оператора
func (s *Reconciliation) GetLedger(ctx context.Context, accountID string) ([]models.LedgerEntry, error) {
	if _, err := s.Accounts.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	entries, err := s.Ledger.GetLedgerEntries(ctx, accountID)
	if err != nil {
		logger.Errorw("Failed to get ledger", "account", accountID, "error", err)
		return nil, err
	}
	return entries, nil
}

// SyncAccount - обновление проекции пользователя из внешнего справочника
func (s *Reconciliation) SyncAccount(ctx context.Context, account models.AccountData) error {
	if strings.TrimSpace(account.AccountID) == "" {
		return ErrInvalidAccount
	}
	if err := s.Accounts.UpsertAccount(ctx, account); err != nil {
		logger.Errorw("Failed to sync account", "account", account.AccountID, "error", err)
		return err
	}
	return nil
}
