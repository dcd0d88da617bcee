package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/denmor86/ya-cashout/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func initLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
}

func newTestWallet(accounts storage.AccountsStorage, cashOuts storage.CashOutStorage) *Wallet {
	wallet := NewWallet(accounts, cashOuts, nil)
	wallet.Now = func() time.Time { return testNow }
	return wallet
}

func TestWallet_Credit(t *testing.T) {
	initLogger(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)

	wallet := newTestWallet(mockAccounts, nil)

	testCases := []struct {
		Name           string
		Amount         decimal.Decimal
		SetupMocks     func()
		ExpectedError  error
		ExpectedWallet *models.Wallet
	}{
		{
			Name:          "Error. Zero amount #1",
			Amount:        decimal.Zero,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Error. Negative amount #2",
			Amount:        decimal.NewFromInt(-5),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Error. Fraction of a cent #3",
			Amount:        decimal.RequireFromString("1.005"),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:   "Error. Account not found #4",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockAccounts.EXPECT().CreditWallet(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError: ErrAccountNotFound,
		},
		{
			Name:          "Error. Amount above column range #5",
			Amount:        decimal.NewFromFloat(1e17),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:   "Success #6",
			Amount: decimal.RequireFromString("25.50"),
			SetupMocks: func() {
				expected := models.LedgerEntry{
					AccountID:   "acc-1",
					Type:        models.LedgerEntryCredit,
					Amount:      decimal.RequireFromString("25.50"),
					Description: "Order #42",
					CreatedAt:   testNow,
				}
				mockAccounts.EXPECT().CreditWallet(gomock.Any(), expected).
					Return(&models.Wallet{Balance: decimal.NewFromInt(125), TotalEarned: decimal.NewFromInt(300)}, nil)
			},
			ExpectedWallet: &models.Wallet{Balance: decimal.NewFromInt(125), TotalEarned: decimal.NewFromInt(300)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := wallet.Credit(ctx, "acc-1", tc.Amount, "Order #42")

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedWallet, result); diff != "" {
				t.Errorf("Wallet mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWallet_Debit(t *testing.T) {
	initLogger(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)

	wallet := newTestWallet(mockAccounts, nil)

	t.Run("Error. Insufficient funds reports balance", func(t *testing.T) {
		mockAccounts.EXPECT().DebitWallet(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
		mockAccounts.EXPECT().GetAccount(gomock.Any(), "acc-1").
			Return(&models.Account{AccountID: "acc-1", WalletBalance: decimal.NewFromInt(30)}, nil)

		_, err := wallet.Debit(context.Background(), "acc-1", decimal.NewFromInt(50), "fee")

		var insufficient *InsufficientFundsError
		if !errors.As(err, &insufficient) {
			t.Fatalf("Expected InsufficientFundsError, got: '%v'", err)
		}
		if !errors.Is(err, ErrInsufficientFunds) {
			t.Errorf("Expected error to match ErrInsufficientFunds")
		}
		if !insufficient.Available.Equal(decimal.NewFromInt(30)) || !insufficient.Requested.Equal(decimal.NewFromInt(50)) {
			t.Errorf("Unexpected details: available %s, requested %s", insufficient.Available, insufficient.Requested)
		}
	})

	t.Run("Success. Debit ledger entry", func(t *testing.T) {
		expected := models.LedgerEntry{
			AccountID:   "acc-1",
			Type:        models.LedgerEntryDebit,
			Amount:      decimal.NewFromInt(20),
			Description: "fee",
			CreatedAt:   testNow,
		}
		mockAccounts.EXPECT().DebitWallet(gomock.Any(), expected).
			Return(&models.Wallet{Balance: decimal.NewFromInt(80), TotalEarned: decimal.NewFromInt(100)}, nil)

		result, err := wallet.Debit(context.Background(), "acc-1", decimal.NewFromInt(20), "fee")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if !result.Balance.Equal(decimal.NewFromInt(80)) {
			t.Errorf("Expected balance 80, got %s", result.Balance)
		}
	})

	t.Run("Error. Invalid amount", func(t *testing.T) {
		_, err := wallet.Debit(context.Background(), "acc-1", decimal.NewFromInt(-1), "fee")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount, got: '%v'", err)
		}
	})
}

func TestWallet_GetBalance(t *testing.T) {
	initLogger(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)

	wallet := newTestWallet(mockAccounts, nil)

	testCases := []struct {
		Name            string
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance *models.WalletBalance
	}{
		{
			Name: "Error. Account not found #1",
			SetupMocks: func() {
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "acc-1").Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError: ErrAccountNotFound,
		},
		{
			Name: "Success #2",
			SetupMocks: func() {
				mockAccounts.EXPECT().GetAccount(gomock.Any(), "acc-1").Return(&models.Account{
					AccountID:       "acc-1",
					WalletBalance:   decimal.NewFromInt(100),
					TotalEarned:     decimal.NewFromInt(150),
					StripeConnectID: "acct_1",
				}, nil)
			},
			ExpectedBalance: &models.WalletBalance{
				Wallet:          models.Wallet{Balance: decimal.NewFromInt(100), TotalEarned: decimal.NewFromInt(150)},
				StripeConnectID: "acct_1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			balance, err := wallet.GetBalance(context.Background(), "acc-1")

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.ExpectedBalance, balance); diff != "" {
				t.Errorf("Balance mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWallet_DebitForCashOut(t *testing.T) {
	initLogger(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := mocks.NewMockAccountsStorage(ctrl)
	mockCashOuts := mocks.NewMockCashOutStorage(ctrl)

	wallet := newTestWallet(mockAccounts, mockCashOuts)
	request := models.CashOutRequest{
		RequestID: "3f1c1a5e-8d1b-4a8e-9a51-1b1d2f0b7c11",
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(60),
		Status:    models.CashOutStatusCompleted,
	}

	t.Run("Error. Balance changed since check", func(t *testing.T) {
		mockCashOuts.EXPECT().CompleteCashOut(gomock.Any(), request).Return(nil, storage.ErrInsufficientFunds)
		mockAccounts.EXPECT().GetAccount(gomock.Any(), "acc-1").
			Return(&models.Account{AccountID: "acc-1", WalletBalance: decimal.NewFromInt(40)}, nil)

		_, err := wallet.DebitForCashOut(context.Background(), request)
		if !errors.Is(err, ErrInsufficientFunds) {
			t.Errorf("Expected ErrInsufficientFunds, got: '%v'", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		mockCashOuts.EXPECT().CompleteCashOut(gomock.Any(), request).
			Return(&models.Wallet{Balance: decimal.NewFromInt(40), TotalEarned: decimal.NewFromInt(100)}, nil)

		result, err := wallet.DebitForCashOut(context.Background(), request)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if !result.Balance.Equal(decimal.NewFromInt(40)) {
			t.Errorf("Expected balance 40, got %s", result.Balance)
		}
	})
}
