package middleware

import (
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/storytrails-server/internal/logger"
)

// Recovery turns handler panics into 500 responses.
type Recovery struct {
	logger *logger.Logger
}

// NewRecovery creates a new Recovery middleware.
func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Handle recovers from panics raised by next.
func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			panicRecoveries.Inc()
			m.logger.Error("panic recovered",
				"request_id", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"error", fmt.Sprint(rec))

			writeDetails(w, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
