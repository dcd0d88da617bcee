package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConnectAccountRequest - модель запроса подключения счёта в платёжном шлюзе
type ConnectAccountRequest struct {
	Email             string `json:"email"`
	AccountHolderName string `json:"accountHolderName"`
	Country           string `json:"country"`
	BusinessType      string `json:"businessType"`
}

// AccountLinkRequest - модель запроса ссылки на прохождение онбординга
type AccountLinkRequest struct {
	RefreshURL string `json:"refreshUrl"`
	ReturnURL  string `json:"returnUrl"`
}

// AccountRequirements - требования шлюза, которые пользователь должен выполнить
type AccountRequirements struct {
	CurrentlyDue   []string `json:"currently_due"`
	EventuallyDue  []string `json:"eventually_due"`
	PastDue        []string `json:"past_due"`
	DisabledReason string   `json:"disabled_reason,omitempty"`
}

// BusinessProfile - публичный профиль подключённого счёта
type BusinessProfile struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// GatewayAccount - состояние подключённого счёта в платёжном шлюзе
type GatewayAccount struct {
	ID              string               `json:"id"`
	Email           string               `json:"email,omitempty"`
	ChargesEnabled  bool                 `json:"charges_enabled"`
	PayoutsEnabled  bool                 `json:"payouts_enabled"`
	Requirements    *AccountRequirements `json:"requirements,omitempty"`
	BusinessProfile *BusinessProfile     `json:"business_profile,omitempty"`
}

// ConnectAccountParams - данные владельца для создания счёта в шлюзе
type ConnectAccountParams struct {
	Email        string
	FirstName    string
	LastName     string
	Country      string
	BusinessType string
}

// TransferRequest - перевод с платформы на подключённый счёт
type TransferRequest struct {
	AccountID      string
	Amount         decimal.Decimal
	Currency       string
	Description    string
	IdempotencyKey string
}

// Transfer - результат перевода
type Transfer struct {
	ID      string
	Amount  decimal.Decimal
	Status  string
	Created time.Time
}

// PayoutRequest - выплата с подключённого счёта на банковский счёт
type PayoutRequest struct {
	AccountID   string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// Payout - результат выплаты
type Payout struct {
	ID          string
	Amount      decimal.Decimal
	Status      string
	ArrivalDate time.Time
	Created     time.Time
}

// PayoutRequestBody - модель запроса выплаты оператором
type PayoutRequestBody struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// TransferResponse - перевод для выдачи
type TransferResponse struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	Created int64   `json:"created"`
}

// PayoutResponse - выплата для выдачи
type PayoutResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	ArrivalDate int64   `json:"arrivalDate"`
	Created     int64   `json:"created"`
}

// ConnectAccountResponse - результат подключения счёта в шлюзе
type ConnectAccountResponse struct {
	Message         string          `json:"message"`
	StripeConnectID string          `json:"stripeConnectId"`
	AccountStatus   *GatewayAccount `json:"accountStatus"`
}

// AccountLinkResponse - ссылка на онбординг
type AccountLinkResponse struct {
	URL string `json:"url"`
}

// PayoutResultResponse - результат выплаты оператором
type PayoutResultResponse struct {
	Message string         `json:"message"`
	Payout  PayoutResponse `json:"payout"`
}

func NewTransferResponse(t Transfer) TransferResponse {
	amount, _ := t.Amount.Float64()
	return TransferResponse{ID: t.ID, Amount: amount, Status: t.Status, Created: t.Created.Unix()}
}

func NewPayoutResponse(p Payout) PayoutResponse {
	amount, _ := p.Amount.Float64()
	return PayoutResponse{
		ID:          p.ID,
		Amount:      amount,
		Status:      p.Status,
		ArrivalDate: p.ArrivalDate.Unix(),
		Created:     p.Created.Unix(),
	}
}
