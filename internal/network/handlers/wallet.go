package handlers

import (
	"net/http"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/shopspring/decimal"
)

// GetWalletHandler - баланс кошелька пользователя
func GetWalletHandler(ws services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		balance, err := ws.GetBalance(r.Context(), accountID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.WalletBalanceResponse{
			Wallet:          models.NewWalletResponse(balance.Wallet),
			StripeConnectID: balance.StripeConnectID,
		})
	})
}

// AddFundsHandler - пополнение кошелька (начисление заработка)
func AddFundsHandler(ws services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AddFundsRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		description := req.Description
		if description == "" {
			description = "Funds added to wallet"
		}
		wallet, err := ws.Credit(r.Context(), accountID(r), decimal.NewFromFloat(req.Amount), description)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logger.Infow("Funds added", "account", accountID(r), "amount", req.Amount)
		writeJSON(w, http.StatusOK, models.AddFundsResponse{
			Message: "Funds added successfully",
			Wallet:  models.NewWalletResponse(*wallet),
		})
	})
}
