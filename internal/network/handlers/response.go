package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denmor86/ya-cashout/internal/client"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/go-chi/chi/v5"
)

const (
	ParamAccountID = "accountId"
	ParamRequestID = "requestId"

	MessageInternalError = "Internal server error"
	MessageInvalidFormat = "Invalid request format"
)

// writeJSON - выдача ответа в формате JSON
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("Failed to encode JSON response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// decodeJSON - разбор тела запроса, при ошибке ответ уже отправлен
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warnw("Invalid request format", "uri", r.RequestURI, "error", err)
		writeMessage(w, http.StatusBadRequest, MessageInvalidFormat)
		return false
	}
	return true
}

// decodeOptionalJSON - тело запроса необязательно, все поля имеют значения по умолчанию
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	logger.Warnw("Invalid request format", "uri", r.RequestURI, "error", err)
	writeMessage(w, http.StatusBadRequest, MessageInvalidFormat)
	return false
}

func accountID(r *http.Request) string {
	return chi.URLParam(r, ParamAccountID)
}

// writeError - ответ по ошибке сервиса. Ошибки с данными для клиента выдаются с подробностями,
// непредвиденные ошибки выдаются без внутренних деталей.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		transferFailed *services.TransferFailedError
		insufficient   *services.InsufficientFundsError
		notEnabled     *services.PayoutsNotEnabledError
		gatewayErr     *client.GatewayError
	)
	switch {
	case errors.As(err, &transferFailed):
		writeJSON(w, http.StatusBadRequest, models.TransferFailedResponse{
			Message:        "Transfer failed, cash-out request created for manual review",
			Error:          transferFailed.Request.FailureMessage,
			RequestCreated: true,
			RequestID:      transferFailed.Request.RequestID,
		})
	case errors.As(err, &insufficient):
		available, _ := insufficient.Available.Float64()
		requested, _ := insufficient.Requested.Float64()
		writeJSON(w, http.StatusBadRequest, models.InsufficientFundsResponse{
			Message:          "Insufficient wallet balance",
			AvailableBalance: available,
			RequestedAmount:  requested,
		})
	case errors.As(err, &notEnabled):
		writeJSON(w, http.StatusBadRequest, models.PayoutsNotEnabledResponse{
			Message:      "Payouts are not enabled for your account. Please complete account setup.",
			Requirements: notEnabled.Requirements,
		})
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidAccount):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoPayoutAccount):
		writeMessage(w, http.StatusBadRequest, "Please set up your payout account first")
	case errors.Is(err, services.ErrAlreadyOnboarded):
		writeMessage(w, http.StatusBadRequest, "Payout account already exists")
	case errors.Is(err, storage.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, storage.ErrRequestNotFound):
		writeMessage(w, http.StatusNotFound, "Cash-out request not found")
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, storage.ErrStatusConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.As(err, &gatewayErr):
		writeMessage(w, gatewayStatus(gatewayErr), gatewayErr.Message)
	default:
		logger.Errorw("Request failed", "uri", r.RequestURI, "error", err)
		writeMessage(w, http.StatusInternalServerError, MessageInternalError)
	}
}

// gatewayStatus - недоступность шлюза отличается от отказа шлюза в операции
func gatewayStatus(err *client.GatewayError) int {
	switch {
	case err.Code == client.CodeRateLimited || err.StatusCode == http.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case err.Temporary():
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
