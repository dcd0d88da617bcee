package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок на вывод средств
const (
	CashOutStatusPending   = "pending"
	CashOutStatusCompleted = "completed"
	CashOutStatusFailed    = "failed"
	CashOutStatusCancelled = "cancelled"
)

// CashOutStatuses - все допустимые статусы заявки
var CashOutStatuses = []string{
	CashOutStatusPending,
	CashOutStatusCompleted,
	CashOutStatusFailed,
	CashOutStatusCancelled,
}

// CashOutRequest - заявка на вывод средств из кошелька
type CashOutRequest struct {
	RequestID      string
	AccountID      string
	Amount         decimal.Decimal
	Status         string
	TransferID     string
	FailureMessage string
	RequestedAt    time.Time
	CompletedAt    *time.Time
}

// Terminal - заявка находится в конечном состоянии
func (r *CashOutRequest) Terminal() bool {
	return r.Status != CashOutStatusPending
}

// AccountCashOutRequest - заявка вместе с данными владельца (для администратора)
type AccountCashOutRequest struct {
	CashOutRequest
	UserName  string
	UserEmail string
}

// CashOutStatusUpdate - изменение статуса заявки с проверкой ожидаемого статуса
type CashOutStatusUpdate struct {
	AccountID      string
	RequestID      string
	ExpectedStatus string
	Status         string
	FailureMessage string
	CompletedAt    *time.Time
}

// CashOutHistory - история заявок пользователя и сумма выведенных средств
type CashOutHistory struct {
	Requests       []CashOutRequest
	TotalCashedOut decimal.Decimal
}

// CashOutResult - результат успешного вывода средств
type CashOutResult struct {
	Request    CashOutRequest
	Transfer   Transfer
	NewBalance decimal.Decimal
}

// CashOutRequestBody - модель запроса вывода средств
type CashOutRequestBody struct {
	Amount float64 `json:"amount"`
}

// StatusUpdateRequest - модель запроса изменения статуса заявки администратором
type StatusUpdateRequest struct {
	Status         string `json:"status"`
	FailureMessage string `json:"failureMessage,omitempty"`
}

// CashOutRequestResponse - заявка для выдачи
type CashOutRequestResponse struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	TransferID     string  `json:"transferId,omitempty"`
	FailureMessage string  `json:"failureMessage,omitempty"`
	RequestedAt    string  `json:"requestedAt"`
	CompletedAt    string  `json:"completedAt,omitempty"`
}

// AdminCashOutRequestResponse - заявка с данными владельца для выдачи
type AdminCashOutRequestResponse struct {
	CashOutRequestResponse
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// NewCashOutRequestResponse - преобразование заявки в модель выдачи
func NewCashOutRequestResponse(r CashOutRequest) CashOutRequestResponse {
	amount, _ := r.Amount.Float64()
	item := CashOutRequestResponse{
		ID:             r.RequestID,
		Amount:         amount,
		Status:         r.Status,
		TransferID:     r.TransferID,
		FailureMessage: r.FailureMessage,
		RequestedAt:    r.RequestedAt.Format(time.RFC3339),
	}
	if r.CompletedAt != nil {
		item.CompletedAt = r.CompletedAt.Format(time.RFC3339)
	}
	return item
}

// CashOutResponse - результат успешного вывода средств
type CashOutResponse struct {
	Message          string           `json:"message"`
	RequestID        string           `json:"requestId"`
	Transfer         TransferResponse `json:"transfer"`
	NewWalletBalance float64          `json:"newWalletBalance"`
}

// CashOutHistoryResponse - история заявок пользователя
type CashOutHistoryResponse struct {
	CashOutRequests []CashOutRequestResponse `json:"cashOutRequests"`
	TotalCashedOut  float64                  `json:"totalCashedOut"`
}

// AdminCashOutListResponse - заявки всех пользователей
type AdminCashOutListResponse struct {
	Requests []AdminCashOutRequestResponse `json:"requests"`
	Total    int                           `json:"total"`
}

// StatusUpdateResponse - заявка после смены статуса администратором
type StatusUpdateResponse struct {
	Message string                 `json:"message"`
	Request CashOutRequestResponse `json:"request"`
}

// InsufficientFundsResponse - отказ из-за нехватки средств
type InsufficientFundsResponse struct {
	Message          string  `json:"message"`
	AvailableBalance float64 `json:"availableBalance"`
	RequestedAmount  float64 `json:"requestedAmount"`
}

// PayoutsNotEnabledResponse - отказ до завершения онбординга в шлюзе
type PayoutsNotEnabledResponse struct {
	Message      string               `json:"message"`
	Requirements *AccountRequirements `json:"requirements,omitempty"`
}

// TransferFailedResponse - перевод не выполнен, заявка ожидает ручного разбора
type TransferFailedResponse struct {
	Message        string `json:"message"`
	Error          string `json:"error"`
	RequestCreated bool   `json:"requestCreated"`
	RequestID      string `json:"requestId"`
}

// NewAdminCashOutRequestResponse - преобразование заявки с данными владельца в модель выдачи
func NewAdminCashOutRequestResponse(r AccountCashOutRequest) AdminCashOutRequestResponse {
	return AdminCashOutRequestResponse{
		CashOutRequestResponse: NewCashOutRequestResponse(r.CashOutRequest),
		UserID:                 r.AccountID,
		UserName:               r.UserName,
		UserEmail:              r.UserEmail,
	}
}
