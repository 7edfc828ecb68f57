package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/model"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	authErrKey
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authentication outcome of an HTTP request in its context.
type Manager struct{}

// NewManager creates a new context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a context carrying the authenticated user id.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the authenticated user id, if any.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// SetAuthErrorToContext records why authentication failed.
func (m *Manager) SetAuthErrorToContext(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authErrKey, err)
}

// GetAuthErrorFromContext returns the recorded authentication failure, if any.
func (m *Manager) GetAuthErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(authErrKey).(error)
	return err
}
