package handlers

import (
	"net/http"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/shopspring/decimal"
)

// CashOutHandler - вывод средств из кошелька на подключённый счёт
func CashOutHandler(cs services.CashOutService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CashOutRequestBody
		if !decodeJSON(w, r, &req) {
			return
		}
		result, err := cs.RequestCashOut(r.Context(), accountID(r), decimal.NewFromFloat(req.Amount))
		if err != nil {
			writeError(w, r, err)
			return
		}
		balance, _ := result.NewBalance.Float64()
		writeJSON(w, http.StatusOK, models.CashOutResponse{
			Message:          "Cash out successful",
			RequestID:        result.Request.RequestID,
			Transfer:         models.NewTransferResponse(result.Transfer),
			NewWalletBalance: balance,
		})
	})
}

// CashOutHistoryHandler - история заявок на вывод средств
func CashOutHistoryHandler(cs services.CashOutService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		history, err := cs.GetCashOutHistory(r.Context(), accountID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		response := models.CashOutHistoryResponse{CashOutRequests: []models.CashOutRequestResponse{}}
		for _, request := range history.Requests {
			response.CashOutRequests = append(response.CashOutRequests, models.NewCashOutRequestResponse(request))
		}
		response.TotalCashedOut, _ = history.TotalCashedOut.Float64()
		writeJSON(w, http.StatusOK, response)
	})
}

// PayoutHandler - выплата оператором с подключённого счёта на банковский счёт
func PayoutHandler(cs services.CashOutService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.PayoutRequestBody
		if !decodeJSON(w, r, &req) {
			return
		}
		payout, err := cs.PayoutBalance(r.Context(), accountID(r), decimal.NewFromFloat(req.Amount), req.Description)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.PayoutResultResponse{
			Message: "Payout initiated successfully",
			Payout:  models.NewPayoutResponse(*payout),
		})
	})
}
