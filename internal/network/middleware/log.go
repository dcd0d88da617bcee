package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LogHandle - middleware-логер для входящих HTTP-запросов.
// Ответы 5xx пишутся уровнем Error, остальные уровнем Info.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		h.ServeHTTP(ww, r)

		status := ww.Status()
		// ответ без явного WriteHeader считается успешным
		if status == 0 {
			status = http.StatusOK
		}
		log := logger.With("request_id", chimiddleware.GetReqID(r.Context()))
		fields := []interface{}{
			"uri", r.RequestURI,
			"method", r.Method,
			"status", status,
			"duration", time.Since(start),
			"size", ww.BytesWritten(),
		}
		if status >= http.StatusInternalServerError {
			log.Errorw("got incoming HTTP request", fields...)
			return
		}
		log.Infow("got incoming HTTP request", fields...)
	})
}
