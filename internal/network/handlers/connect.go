package handlers

import (
	"net/http"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
)

// CreateConnectAccountHandler - подключение счёта для выплат
func CreateConnectAccountHandler(cs services.ConnectService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ConnectAccountRequest
		if !decodeOptionalJSON(w, r, &req) {
			return
		}
		account, err := cs.CreateConnectAccount(r.Context(), accountID(r), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ConnectAccountResponse{
			Message:         "Payout account created successfully",
			StripeConnectID: account.ID,
			AccountStatus:   account,
		})
	})
}

// ConnectAccountLinkHandler - ссылка на онбординг в платёжном шлюзе
func ConnectAccountLinkHandler(cs services.ConnectService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AccountLinkRequest
		if !decodeOptionalJSON(w, r, &req) {
			return
		}
		url, err := cs.GetOnboardingLink(r.Context(), accountID(r), req.RefreshURL, req.ReturnURL)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.AccountLinkResponse{URL: url})
	})
}

// ConnectAccountDetailsHandler - состояние подключённого счёта
func ConnectAccountDetailsHandler(cs services.ConnectService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		details, err := cs.GetAccountDetails(r.Context(), accountID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, details)
	})
}
