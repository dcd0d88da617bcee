package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/ya-cashout/internal/helpers"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/go-chi/chi/v5"
)

// AccountAccess - пользователь работает только со своим счётом, администратор со всеми.
// Подключается после jwtauth.Verifier и jwtauth.Authenticator.
func AccountAccess(param string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if helpers.IsAdmin(r.Context()) {
				h.ServeHTTP(w, r)
				return
			}
			subject, err := helpers.GetSubject(r.Context())
			if err != nil {
				forbidden(w, "Invalid token")
				return
			}
			if subject != chi.URLParam(r, param) {
				logger.Warnw("Access to another account denied", "subject", subject, "uri", r.RequestURI)
				forbidden(w, "Access denied")
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// AdminOnly - операции, доступные только администратору
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsAdmin(r.Context()) {
			subject, _ := helpers.GetSubject(r.Context())
			logger.Warnw("Admin access denied", "subject", subject, "uri", r.RequestURI)
			forbidden(w, "Admin access required")
			return
		}
		h.ServeHTTP(w, r)
	})
}

func forbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: message})
}
