package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountData - проекция пользователя из внешнего справочника пользователей
type AccountData struct {
	AccountID string
	Name      string
	Email     string
}

// AccountRequest - модель синхронизации пользователя из справочника, приходит извне
type AccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account - модель счёта пользователя из хранилища
type Account struct {
	AccountID       string
	Name            string
	Email           string
	WalletBalance   decimal.Decimal
	TotalEarned     decimal.Decimal
	StripeConnectID string
	CreatedAt       time.Time
}

// Onboarded - у пользователя есть счёт в платёжном шлюзе
func (a *Account) Onboarded() bool {
	return a.StripeConnectID != ""
}

// Wallet - текущее состояние кошелька
type Wallet struct {
	Balance     decimal.Decimal
	TotalEarned decimal.Decimal
}

// WalletBalance - кошелёк вместе с идентификатором счёта в платёжном шлюзе
type WalletBalance struct {
	Wallet          Wallet
	StripeConnectID string
}

// AddFundsRequest - модель запроса пополнения кошелька
type AddFundsRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// WalletResponse - кошелёк для выдачи
type WalletResponse struct {
	Balance     float64 `json:"balance"`
	TotalEarned float64 `json:"totalEarned"`
}

// NewWalletResponse - преобразование кошелька в модель выдачи
func NewWalletResponse(w Wallet) WalletResponse {
	balance, _ := w.Balance.Float64()
	earned, _ := w.TotalEarned.Float64()
	return WalletResponse{Balance: balance, TotalEarned: earned}
}

// WalletBalanceResponse - кошелёк и подключённый счёт для выдачи
type WalletBalanceResponse struct {
	Wallet          WalletResponse `json:"wallet"`
	StripeConnectID string         `json:"stripeConnectId,omitempty"`
}

// AddFundsResponse - результат пополнения кошелька
type AddFundsResponse struct {
	Message string         `json:"message"`
	Wallet  WalletResponse `json:"wallet"`
}

// MessageResponse - ответ с человекочитаемым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
