package services

import (
	"errors"
	"fmt"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount must be a positive value up to 9999999999999999.99 with at most two decimal places")
	ErrInvalidStatus     = errors.New("invalid cash-out status")
	ErrInvalidAccount    = errors.New("account id is required")
	ErrNoPayoutAccount   = errors.New("payout account is not connected")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrPayoutsNotEnabled = errors.New("payouts are not enabled for the connected account")
	ErrAlreadyOnboarded  = errors.New("payout account already connected")
	ErrInvalidTransition = errors.New("cash-out request is already in a terminal status")
	ErrTransferFailed    = errors.New("transfer failed, request is pending manual review")
	ErrAccountNotFound   = storage.ErrAccountNotFound
	ErrRequestNotFound   = storage.ErrRequestNotFound
)

// InsufficientFundsError - недостаточно средств, с данными для клиента
type InsufficientFundsError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient wallet balance: available %s, requested %s",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// PayoutsNotEnabledError - шлюз ещё не разрешил выплаты, содержит невыполненные требования
type PayoutsNotEnabledError struct {
	Requirements *models.AccountRequirements
}

func (e *PayoutsNotEnabledError) Error() string {
	return ErrPayoutsNotEnabled.Error()
}

func (e *PayoutsNotEnabledError) Is(target error) bool {
	return target == ErrPayoutsNotEnabled
}

// TransferFailedError - перевод не подтверждён, заявка сохранена в статусе pending
type TransferFailedError struct {
	Request models.CashOutRequest
	Cause   error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransferFailed.Error(), e.Cause)
}

func (e *TransferFailedError) Is(target error) bool {
	return target == ErrTransferFailed
}

func (e *TransferFailedError) Unwrap() error {
	return e.Cause
}
