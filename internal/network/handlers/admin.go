package handlers

import (
	"context"
	"net/http"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/go-chi/chi/v5"
)

// ListCashOutRequestsHandler - заявки всех пользователей, фильтр ?status=
func ListCashOutRequestsHandler(rs services.ReconciliationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests, err := rs.GetAllCashOutRequests(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		response := models.AdminCashOutListResponse{Requests: []models.AdminCashOutRequestResponse{}}
		for _, request := range requests {
			response.Requests = append(response.Requests, models.NewAdminCashOutRequestResponse(request))
		}
		response.Total = len(response.Requests)
		writeJSON(w, http.StatusOK, response)
	})
}

// UpdateCashOutRequestHandler - ручная смена статуса заявки
func UpdateCashOutRequestHandler(rs services.ReconciliationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.StatusUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		requestID := chi.URLParam(r, ParamRequestID)
		request, err := rs.UpdateCashOutRequestStatus(r.Context(), accountID(r), requestID, req.Status, req.FailureMessage)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.StatusUpdateResponse{
			Message: "Cash-out request status updated successfully",
			Request: models.NewCashOutRequestResponse(*request),
		})
	})
}

// LedgerHandler - журнал движения средств по счёту
func LedgerHandler(rs services.ReconciliationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := rs.GetLedger(r.Context(), accountID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		response := models.LedgerResponse{AccountID: accountID(r), Entries: []models.LedgerEntryResponse{}}
		for _, entry := range entries {
			response.Entries = append(response.Entries, models.NewLedgerEntryResponse(entry))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// SyncAccountHandler - синхронизация пользователя из справочника
func SyncAccountHandler(rs services.ReconciliationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AccountRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := rs.SyncAccount(r.Context(), models.AccountData{AccountID: accountID(r), Name: req.Name, Email: req.Email})
		if err != nil {
			writeError(w, r, err)
			return
		}
		logger.Infow("Account synced", "account", accountID(r))
		writeMessage(w, http.StatusOK, "Account synced successfully")
	})
}

// HealthHandler - проверка доступности сервиса и хранилища
func HealthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := check(r.Context()); err != nil {
			logger.Warnw("Health check failed", "error", err)
			writeMessage(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeMessage(w, http.StatusOK, "ok")
	})
}
