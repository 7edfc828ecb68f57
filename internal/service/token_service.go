package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// TokenService issues access tokens and resolves them back to user ids.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue signs a new access token for userID.
func (s *TokenService) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	token, err := s.manager.Generate(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// GetUserID verifies token and returns the user id it carries.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, model.ErrMissingToken
	}

	claims, err := s.manager.Parse(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return uuid.Nil, err
	}

	return claims.UserID, nil
}
