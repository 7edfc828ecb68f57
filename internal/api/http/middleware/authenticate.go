package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// TokenHeader is the request header that carries the access token.
const TokenHeader = "token"

// TokenService resolves user ID from access tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate resolves the token header and records the outcome in the request context.
// It never rejects a request: handlers decide which status an authentication failure gets.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle wraps next with token resolution.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := m.tokenService.GetUserID(ctx, r.Header.Get(TokenHeader))
		if err == nil && userID == uuid.Nil {
			err = model.ErrUnauthenticated
		}

		if err != nil {
			m.logger.Debug("request is not authenticated",
				"path", r.URL.Path,
				"error", err.Error())
			ctx = m.contextManager.SetAuthErrorToContext(ctx, err)
		} else {
			ctx = m.contextManager.SetUserIDToContext(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
