package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	GetAccount = `SELECT id, name, email, wallet_balance, total_earned, COALESCE(stripe_connect_id, ''), created_at
				  FROM ACCOUNTS WHERE id=$1;`
	UpsertAccount = `INSERT INTO ACCOUNTS (id, name, email)
					 VALUES ($1, $2, $3)
					 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email;`
	// идентификатор подключённого счёта устанавливается один раз
	SetStripeConnectID = `UPDATE ACCOUNTS SET stripe_connect_id = $1
						  WHERE id = $2 AND stripe_connect_id IS NULL
						  RETURNING id;`
	AccountExists = `SELECT EXISTS(SELECT 1 FROM ACCOUNTS WHERE id=$1);`
	CreditWallet  = `UPDATE ACCOUNTS
					 SET wallet_balance = wallet_balance + $1,
					     total_earned = total_earned + $1
					 WHERE id = $2
					 RETURNING wallet_balance, total_earned;`
	// условное списание: баланс уменьшается только если его достаточно
	DebitWallet = `UPDATE ACCOUNTS
				   SET wallet_balance = wallet_balance - $1
				   WHERE id = $2 AND wallet_balance >= $1
				   RETURNING wallet_balance, total_earned;`
	InsertLedgerEntry = `INSERT INTO LEDGER_ENTRIES (id, account_id, entry_type, amount, description, reference, created_at)
						 VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

type AccountDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAccountsStorage(db *Database) AccountsStorage {
	return &AccountDatabase{DB: db}
}

func (s *AccountDatabase) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	err := s.DB.Pool.QueryRow(ctx, GetAccount, accountID).Scan(
		&account.AccountID,
		&account.Name,
		&account.Email,
		&account.WalletBalance,
		&account.TotalEarned,
		&account.StripeConnectID,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (s *AccountDatabase) UpsertAccount(ctx context.Context, account models.AccountData) error {
	_, err := s.DB.Pool.Exec(ctx, UpsertAccount, account.AccountID, account.Name, account.Email)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

// SetStripeConnectID - привязка подключённого счёта. Повторная привязка не перезаписывает значение.
func (s *AccountDatabase) SetStripeConnectID(ctx context.Context, accountID string, connectID string) error {
	var id string
	err := s.DB.Pool.QueryRow(ctx, SetStripeConnectID, connectID, accountID).Scan(&id)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		exist, existErr := accountExists(ctx, s.DB.Pool, accountID)
		if existErr != nil {
			return existErr
		}
		if !exist {
			return ErrAccountNotFound
		}
		return ErrAlreadyExists
	}
	// Проверяем нарушение уникальности (счёт шлюза уже привязан к другому пользователю)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to set stripe connect id: %w", err)
}

// CreditWallet - пополнение кошелька и запись в журнал в одной транзакции
func (s *AccountDatabase) CreditWallet(ctx context.Context, entry models.LedgerEntry) (wallet *models.Wallet, err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx, &err, "CreditWallet")

	wallet = &models.Wallet{}
	err = tx.QueryRow(ctx, CreditWallet, entry.Amount, entry.AccountID).Scan(&wallet.Balance, &wallet.TotalEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("update balance: %w", err)
	}
	if err = insertLedgerEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return wallet, nil
}

// DebitWallet - условное списание с кошелька и запись в журнал в одной транзакции
func (s *AccountDatabase) DebitWallet(ctx context.Context, entry models.LedgerEntry) (wallet *models.Wallet, err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx, &err, "DebitWallet")

	wallet, err = debitTx(ctx, tx, entry.AccountID, entry.Amount)
	if err != nil {
		return nil, err
	}
	if err = insertLedgerEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return wallet, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func accountExists(ctx context.Context, q querier, accountID string) (bool, error) {
	var exist bool
	if err := q.QueryRow(ctx, AccountExists, accountID).Scan(&exist); err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return exist, nil
}

// debitTx - атомарное условное списание внутри транзакции
func debitTx(ctx context.Context, tx pgx.Tx, accountID string, amount decimal.Decimal) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	err := tx.QueryRow(ctx, DebitWallet, amount, accountID).Scan(&wallet.Balance, &wallet.TotalEarned)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update balance: %w", err)
	}
	exist, err := accountExists(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrAccountNotFound
	}
	return nil, ErrInsufficientFunds
}

func insertLedgerEntry(ctx context.Context, tx pgx.Tx, entry models.LedgerEntry) error {
	if entry.EntryID == "" {
		entry.EntryID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := tx.Exec(ctx, InsertLedgerEntry,
		entry.EntryID,
		entry.AccountID,
		entry.Type,
		entry.Amount,
		entry.Description,
		entry.Reference,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// rollback - откат транзакции, если операция завершилась ошибкой
func rollback(ctx context.Context, tx pgx.Tx, err *error, operation string) {
	if *err == nil {
		return
	}
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		logger.Errorw("Rollback failed", "operation", operation, "error", rbErr)
	}
}
