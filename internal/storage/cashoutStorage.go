package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	cashOutColumns = `r.id::text, r.account_id, r.amount, r.status, COALESCE(r.transfer_id, ''),
					  COALESCE(r.failure_message, ''), r.requested_at, r.completed_at`

	InsertCashOutRequest = `INSERT INTO CASH_OUT_REQUESTS (id, account_id, amount, status, transfer_id, failure_message, requested_at, completed_at)
							VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8);`
	GetCashOutRequest = `SELECT ` + cashOutColumns + ` FROM CASH_OUT_REQUESTS r
						 WHERE r.account_id = $1 AND r.id = $2;`
	GetCashOutRequests = `SELECT ` + cashOutColumns + ` FROM CASH_OUT_REQUESTS r
						  WHERE r.account_id = $1 ORDER BY r.seq;`
	ListCashOutRequests = `SELECT ` + cashOutColumns + `, a.name, a.email
						   FROM CASH_OUT_REQUESTS r
						   JOIN ACCOUNTS a ON a.id = r.account_id
						   WHERE $1 = '' OR r.status = $1
						   ORDER BY r.account_id, r.seq;`
	// смена статуса только если заявка всё ещё в ожидаемом статусе
	UpdateCashOutStatus = `UPDATE CASH_OUT_REQUESTS r
						   SET status = $1,
						       failure_message = NULLIF($2, ''),
						       completed_at = $3
						   WHERE r.account_id = $4 AND r.id = $5 AND r.status = $6
						   RETURNING ` + cashOutColumns + `;`
	CountCashOutRequests = `SELECT COUNT(*) FROM CASH_OUT_REQUESTS WHERE status = $1;`
)

type CashOutDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCashOutStorage(db *Database) CashOutStorage {
	return &CashOutDatabase{DB: db}
}

// CompleteCashOut - списание с кошелька, запись завершённой заявки и журнала в одной транзакции
func (s *CashOutDatabase) CompleteCashOut(ctx context.Context, request models.CashOutRequest) (wallet *models.Wallet, err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx, &err, "CompleteCashOut")

	// 1. Условно уменьшаем баланс
	wallet, err = debitTx(ctx, tx, request.AccountID, request.Amount)
	if err != nil {
		return nil, err
	}
	// 2. Добавляем заявку
	if err = insertCashOutRequest(ctx, tx, request); err != nil {
		return nil, err
	}
	// 3. Запись в журнал
	err = insertLedgerEntry(ctx, tx, models.LedgerEntry{
		AccountID:   request.AccountID,
		Type:        models.LedgerEntryCashOut,
		Amount:      request.Amount,
		Description: "Cash out from wallet",
		Reference:   request.TransferID,
		CreatedAt:   request.RequestedAt,
	})
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return wallet, nil
}

// AddCashOutRequest - добавление заявки без изменения баланса
func (s *CashOutDatabase) AddCashOutRequest(ctx context.Context, request models.CashOutRequest) (err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx, &err, "AddCashOutRequest")

	if err = insertCashOutRequest(ctx, tx, request); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *CashOutDatabase) GetCashOutRequest(ctx context.Context, accountID string, requestID string) (*models.CashOutRequest, error) {
	request, err := scanCashOutRequest(s.DB.Pool.QueryRow(ctx, GetCashOutRequest, accountID, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get cash-out request: %w", err)
	}
	return request, nil
}

func (s *CashOutDatabase) GetCashOutRequests(ctx context.Context, accountID string) ([]models.CashOutRequest, error) {
	var requests []models.CashOutRequest
	rows, err := s.DB.Pool.Query(ctx, GetCashOutRequests, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash-out requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		request, err := scanCashOutRequest(rows)
		if err != nil {
			return requests, fmt.Errorf("failed scan cash-out request: %w", err)
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

func (s *CashOutDatabase) ListCashOutRequests(ctx context.Context, status string) ([]models.AccountCashOutRequest, error) {
	var requests []models.AccountCashOutRequest
	rows, err := s.DB.Pool.Query(ctx, ListCashOutRequests, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-out requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.AccountCashOutRequest
		err := rows.Scan(
			&item.RequestID,
			&item.AccountID,
			&item.Amount,
			&item.Status,
			&item.TransferID,
			&item.FailureMessage,
			&item.RequestedAt,
			&item.CompletedAt,
			&item.UserName,
			&item.UserEmail,
		)
		if err != nil {
			return requests, fmt.Errorf("failed scan cash-out request: %w", err)
		}
		requests = append(requests, item)
	}
	return requests, rows.Err()
}

// UpdateCashOutStatus - compare-and-set статуса заявки
func (s *CashOutDatabase) UpdateCashOutStatus(ctx context.Context, update models.CashOutStatusUpdate) (*models.CashOutRequest, error) {
	request, err := scanCashOutRequest(s.DB.Pool.QueryRow(ctx, UpdateCashOutStatus,
		update.Status,
		update.FailureMessage,
		update.CompletedAt,
		update.AccountID,
		update.RequestID,
		update.ExpectedStatus,
	))
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update cash-out request: %w", err)
	}
	// заявка либо отсутствует, либо её статус уже изменили
	if _, getErr := s.GetCashOutRequest(ctx, update.AccountID, update.RequestID); getErr != nil {
		return nil, getErr
	}
	return nil, ErrStatusConflict
}

func (s *CashOutDatabase) CountCashOutRequests(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := s.DB.Pool.QueryRow(ctx, CountCashOutRequests, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cash-out requests: %w", err)
	}
	return count, nil
}

func insertCashOutRequest(ctx context.Context, tx pgx.Tx, request models.CashOutRequest) error {
	_, err := tx.Exec(ctx, InsertCashOutRequest,
		request.RequestID,
		request.AccountID,
		request.Amount,
		request.Status,
		request.TransferID,
		request.FailureMessage,
		request.RequestedAt,
		request.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash-out request: %w", err)
	}
	return nil
}

func scanCashOutRequest(row pgx.Row) (*models.CashOutRequest, error) {
	var request models.CashOutRequest
	err := row.Scan(
		&request.RequestID,
		&request.AccountID,
		&request.Amount,
		&request.Status,
		&request.TransferID,
		&request.FailureMessage,
		&request.RequestedAt,
		&request.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
