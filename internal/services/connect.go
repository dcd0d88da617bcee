package services

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/ya-cashout/internal/client"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
)

const (
	DefaultCountry      = "US"
	DefaultBusinessType = "individual"

	OnboardingRefreshPath = "/cashout-onboarding"
	OnboardingReturnPath  = "/cashout-success"
)

type Connect struct {
	Accounts    storage.AccountsStorage
	Gateway     client.PaymentGateway
	FrontendURL string
}

// Создание сервиса
func NewConnect(accounts storage.AccountsStorage, gateway client.PaymentGateway, frontendURL string) *Connect {
	return &Connect{Accounts: accounts, Gateway: gateway, FrontendURL: strings.TrimRight(frontendURL, "/")}
}

// CreateConnectAccount - создание подключённого счёта в шлюзе. Повторное подключение запрещено,
// сохранённый идентификатор никогда не перезаписывается.
func (s *Connect) CreateConnectAccount(ctx context.Context, accountID string, req models.ConnectAccountRequest) (*models.GatewayAccount, error) {
	account, err := s.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Onboarded() {
		logger.Warnw("Payout account already connected", "account", accountID)
		return nil, ErrAlreadyOnboarded
	}

	created, err := s.Gateway.CreateConnectAccount(ctx, ownerParams(account, req))
	if err != nil {
		logger.Errorw("Failed to create connect account", "account", accountID, "error", err)
		return nil, err
	}

	// счёт в шлюзе уже создан, сохранение не должно прерываться отменой запроса
	if err = s.Accounts.SetStripeConnectID(context.WithoutCancel(ctx), accountID, created.ID); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warnw("Payout account connected concurrently", "account", accountID, "orphan", created.ID)
			return nil, ErrAlreadyOnboarded
		}
		logger.Errorw("Failed to save connect account", "account", accountID, "connect", created.ID, "error", err)
		return nil, err
	}
	logger.Infow("Payout account connected", "account", accountID, "connect", created.ID)
	return created, nil
}

// GetOnboardingLink - ссылка на прохождение онбординга в шлюзе
func (s *Connect) GetOnboardingLink(ctx context.Context, accountID string, refreshURL string, returnURL string) (string, error) {
	connectID, err := s.connectID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if refreshURL == "" {
		refreshURL = s.FrontendURL + OnboardingRefreshPath
	}
	if returnURL == "" {
		returnURL = s.FrontendURL + OnboardingReturnPath
	}
	url, err := s.Gateway.CreateOnboardingLink(ctx, connectID, refreshURL, returnURL)
	if err != nil {
		logger.Errorw("Failed to create onboarding link", "account", accountID, "error", err)
		return "", err
	}
	return url, nil
}

// GetAccountDetails - состояние подключённого счёта в шлюзе
func (s *Connect) GetAccountDetails(ctx context.Context, accountID string) (*models.GatewayAccount, error) {
	connectID, err := s.connectID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	details, err := s.Gateway.GetAccountStatus(ctx, connectID)
	if err != nil {
		logger.Errorw("Failed to get connect account", "account", accountID, "error", err)
		return nil, err
	}
	return details, nil
}

func (s *Connect) connectID(ctx context.Context, accountID string) (string, error) {
	account, err := s.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	if !account.Onboarded() {
		return "", ErrNoPayoutAccount
	}
	return account.StripeConnectID, nil
}

// ownerParams - данные владельца: из запроса, иначе из справочника пользователей
func ownerParams(account *models.Account, req models.ConnectAccountRequest) models.ConnectAccountParams {
	params := models.ConnectAccountParams{
		Email:        req.Email,
		Country:      req.Country,
		BusinessType: req.BusinessType,
	}
	if params.Email == "" {
		params.Email = account.Email
	}
	if params.Country == "" {
		params.Country = DefaultCountry
	}
	if params.BusinessType == "" {
		params.BusinessType = DefaultBusinessType
	}
	name := req.AccountHolderName
	if name == "" {
		name = account.Name
	}
	params.FirstName, params.LastName = splitName(name)
	return params
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
