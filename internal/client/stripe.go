package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	stripeclient "github.com/stripe/stripe-go/v81/client"
)

const (
	accountLinkOnboarding = "account_onboarding"
	payoutScheduleDaily   = "daily"
	centsExponent         = 2
)

// StripeGateway - реализация платёжного шлюза поверх Stripe Connect
type StripeGateway struct {
	api *stripeclient.API
}

// NewStripeGateway - создание клиента Stripe. Ключ проверяется при загрузке конфигурации.
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: stripeclient.New(secretKey, nil)}
}

// NewStripeGatewayWithBackend - клиент с заданным транспортом (тестовый сервер, прокси)
func NewStripeGatewayWithBackend(secretKey string, backend stripe.Backend) *StripeGateway {
	backends := &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	return &StripeGateway{api: stripeclient.New(secretKey, backends)}
}

func (g *StripeGateway) CreateConnectAccount(ctx context.Context, owner models.ConnectAccountParams) (*models.GatewayAccount, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		Email:        stripe.String(owner.Email),
		Country:      stripe.String(owner.Country),
		BusinessType: stripe.String(owner.BusinessType),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
		Settings: &stripe.AccountSettingsParams{
			Payouts: &stripe.AccountSettingsPayoutsParams{
				DebitNegativeBalances: stripe.Bool(true),
				Schedule: &stripe.AccountSettingsPayoutsScheduleParams{
					Interval: stripe.String(payoutScheduleDaily),
				},
			},
		},
		Individual: &stripe.PersonParams{
			FirstName: stripe.String(owner.FirstName),
			LastName:  stripe.String(owner.LastName),
			Email:     stripe.String(owner.Email),
		},
	}
	params.Context = ctx

	account, err := g.api.Accounts.New(params)
	if err != nil {
		return nil, ToGatewayError(err)
	}
	return toGatewayAccount(account), nil
}

func (g *StripeGateway) CreateOnboardingLink(ctx context.Context, accountID string, refreshURL string, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		Type:       stripe.String(accountLinkOnboarding),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", ToGatewayError(err)
	}
	return link.URL, nil
}

func (g *StripeGateway) GetAccountStatus(ctx context.Context, accountID string) (*models.GatewayAccount, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := g.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, ToGatewayError(err)
	}
	return toGatewayAccount(account), nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transfer, error) {
	amount, err := amountParam(req.Amount)
	if err != nil {
		return nil, err
	}
	params := &stripe.TransferParams{
		Amount:      amount,
		Currency:    stripe.String(req.Currency),
		Destination: stripe.String(req.AccountID),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	transfer, err := g.api.Transfers.New(params)
	if err != nil {
		return nil, ToGatewayError(err)
	}
	status := "paid"
	if transfer.Reversed {
		status = "reversed"
	}
	return &models.Transfer{
		ID:      transfer.ID,
		Amount:  FromCents(transfer.Amount),
		Status:  status,
		Created: time.Unix(transfer.Created, 0).UTC(),
	}, nil
}

func (g *StripeGateway) CreatePayout(ctx context.Context, req models.PayoutRequest) (*models.Payout, error) {
	amount, err := amountParam(req.Amount)
	if err != nil {
		return nil, err
	}
	params := &stripe.PayoutParams{
		Amount:      amount,
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	// выплата выполняется от имени подключённого счёта
	params.SetStripeAccount(req.AccountID)

	payout, err := g.api.Payouts.New(params)
	if err != nil {
		return nil, ToGatewayError(err)
	}
	return &models.Payout{
		ID:          payout.ID,
		Amount:      FromCents(payout.Amount),
		Status:      string(payout.Status),
		ArrivalDate: time.Unix(payout.ArrivalDate, 0).UTC(),
		Created:     time.Unix(payout.Created, 0).UTC(),
	}, nil
}

// ToCents - перевод суммы в минимальные единицы валюты.
// Сумма, не помещающаяся в int64, отклоняется, а не усекается.
func ToCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Shift(centsExponent).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount.String())
	}
	return cents.IntPart(), nil
}

// amountParam - сумма для запроса в шлюз, переполнение считается ошибкой запроса
func amountParam(amount decimal.Decimal) (*int64, error) {
	cents, err := ToCents(amount)
	if err != nil {
		return nil, NewGatewayError(CodeAmountOutOfRange, err.Error(), http.StatusBadRequest)
	}
	return stripe.Int64(cents), nil
}

// FromCents - перевод минимальных единиц валюты в сумму
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsExponent)
}

// ToGatewayError - приведение ошибки Stripe к ошибке шлюза
func ToGatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		code := string(stripeErr.Code)
		if code == "" {
			code = string(stripeErr.Type)
		}
		return NewGatewayError(code, stripeErr.Msg, stripeErr.HTTPStatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return NewGatewayError(CodeUnavailable, err.Error(), 0)
}

func toGatewayAccount(account *stripe.Account) *models.GatewayAccount {
	result := &models.GatewayAccount{
		ID:             account.ID,
		Email:          account.Email,
		ChargesEnabled: account.ChargesEnabled,
		PayoutsEnabled: account.PayoutsEnabled,
	}
	if account.Requirements != nil {
		result.Requirements = &models.AccountRequirements{
			CurrentlyDue:   account.Requirements.CurrentlyDue,
			EventuallyDue:  account.Requirements.EventuallyDue,
			PastDue:        account.Requirements.PastDue,
			DisabledReason: string(account.Requirements.DisabledReason),
		}
	}
	if account.BusinessProfile != nil {
		result.BusinessProfile = &models.BusinessProfile{
			Name: account.BusinessProfile.Name,
			URL:  account.BusinessProfile.URL,
		}
	}
	return result
}
