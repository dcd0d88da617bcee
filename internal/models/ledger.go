package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы записей журнала кошелька
const (
	LedgerEntryCredit  = "credit"
	LedgerEntryDebit   = "debit"
	LedgerEntryCashOut = "cash_out"
	LedgerEntryPayout  = "payout"
)

// LedgerEntry - запись журнала движения средств по счёту
type LedgerEntry struct {
	EntryID     string
	AccountID   string
	Type        string
	Amount      decimal.Decimal
	Description string
	Reference   string
	CreatedAt   time.Time
}

// LedgerEntryResponse - запись журнала для выдачи
type LedgerEntryResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Reference   string  `json:"reference,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// LedgerResponse - журнал счёта для выдачи
type LedgerResponse struct {
	AccountID string                `json:"accountId"`
	Entries   []LedgerEntryResponse `json:"entries"`
}

func NewLedgerEntryResponse(e LedgerEntry) LedgerEntryResponse {
	amount, _ := e.Amount.Float64()
	return LedgerEntryResponse{
		ID:          e.EntryID,
		Type:        e.Type,
		Amount:      amount,
		Description: e.Description,
		Reference:   e.Reference,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
