package storage

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetLedgerEntries = `SELECT id::text, account_id, entry_type, amount, description, reference, created_at
						FROM LEDGER_ENTRIES WHERE account_id = $1 ORDER BY seq;`
)

type LedgerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewLedgerStorage(db *Database) LedgerStorage {
	return &LedgerDatabase{DB: db}
}

// AddLedgerEntry - запись в журнал, не меняющая баланс (выплаты оператора)
func (s *LedgerDatabase) AddLedgerEntry(ctx context.Context, entry models.LedgerEntry) (err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, tx, &err, "AddLedgerEntry")

	exist, err := accountExists(ctx, tx, entry.AccountID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrAccountNotFound
	}
	if err = insertLedgerEntry(ctx, tx, entry); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *LedgerDatabase) GetLedgerEntries(ctx context.Context, accountID string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	rows, err := s.DB.Pool.Query(ctx, GetLedgerEntries, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.EntryID,
			&entry.AccountID,
			&entry.Type,
			&entry.Amount,
			&entry.Description,
			&entry.Reference,
			&entry.CreatedAt,
		)
		if err != nil {
			return entries, fmt.Errorf("failed scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
