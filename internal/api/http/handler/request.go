package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/model"
)

// authenticatedUser returns the caller resolved by the Authenticate middleware.
func authenticatedUser(ctx context.Context, cm model.ContextManager) (uuid.UUID, error) {
	if err := cm.GetAuthErrorFromContext(ctx); err != nil {
		return uuid.Nil, err
	}

	userID, ok := cm.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, model.ErrMissingToken
	}

	return userID, nil
}

// pathID parses the {id} URL parameter. A malformed id cannot name a record.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed id %q: %w", raw, model.ErrNotFound)
	}
	return id, nil
}

// decodeJSON reads the request body into dst. Unknown fields are ignored and an
// empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return model.NewValidationError("body", "must be a valid JSON object")
	}
	return nil
}

// parseOptionalUUID parses a reference field; nil stays nil.
func parseOptionalUUID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, model.NewValidationError(field, "must be a valid UUID")
	}
	return &id, nil
}
