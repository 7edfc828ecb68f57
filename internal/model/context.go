package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager stores the authentication outcome of a request in its context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
	SetAuthErrorToContext(ctx context.Context, err error) context.Context
	GetAuthErrorFromContext(ctx context.Context) error
}
