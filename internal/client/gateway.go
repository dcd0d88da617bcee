package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/denmor86/ya-cashout/internal/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

// PaymentGateway - внешний платёжный шлюз (подключённые счета, переводы, выплаты)
type PaymentGateway interface {
	CreateConnectAccount(ctx context.Context, params models.ConnectAccountParams) (*models.GatewayAccount, error)
	CreateOnboardingLink(ctx context.Context, accountID string, refreshURL string, returnURL string) (string, error)
	GetAccountStatus(ctx context.Context, accountID string) (*models.GatewayAccount, error)
	CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transfer, error)
	CreatePayout(ctx context.Context, req models.PayoutRequest) (*models.Payout, error)
}

// Коды ошибок, которые формирует сам сервис (не шлюз)
const (
	CodeCircuitOpen      = "circuit_open"
	CodeRateLimited      = "rate_limited"
	CodeUnavailable      = "gateway_unavailable"
	CodeUnclassified     = "gateway_error"
	CodeAmountOutOfRange = "amount_out_of_range"
)

var ErrGateway = errors.New("payment gateway error")

// ErrAmountOutOfRange - сумма не помещается в минимальные единицы валюты шлюза
var ErrAmountOutOfRange = errors.New("amount is out of range")

// GatewayError - ошибка платёжного шлюза, сообщение шлюза передаётся без изменений
type GatewayError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

// Temporary - ошибка связана с доступностью шлюза, а не с содержимым запроса
func (e *GatewayError) Temporary() bool {
	switch {
	case e.Code == CodeCircuitOpen, e.Code == CodeRateLimited, e.Code == CodeUnavailable:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode == 0, e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

func NewGatewayError(code string, message string, status int) *GatewayError {
	return &GatewayError{Code: code, Message: message, StatusCode: status}
}
