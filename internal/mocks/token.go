package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storytrails-server/internal/model"
)

// TokenManager mocks model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	register(&m.Mock, t)
	return m
}

func (m *TokenManager) Generate(userID uuid.UUID) (string, error) {
	ret := m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Claims, error) {
	ret := m.Called(token)
	return ret.Get(0).(model.Claims), ret.Error(1)
}

// TokenService mocks the token resolver and issuer used by middleware and services.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}

func (m *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	ret := m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (m *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	ret := m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}
