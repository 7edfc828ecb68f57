package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/auth"
	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
}

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", model.ErrUnauthenticated)

var verifyPassword = auth.VerifyPassword

// dummyPasswordHash is checked against on unknown emails so that both login
// failures cost one Argon2 computation.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword("storytrails-unknown-user")
	if err != nil {
		return ""
	}
	return hash
})

type User struct {
	userStore model.UserStore
	tokens    TokenIssuer
	validator Validator
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, tokens TokenIssuer, validator Validator, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

// Register creates a user account. A taken email yields model.ErrConflict.
func (s *User) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))
	params.Name = strings.TrimSpace(params.Name)

	if err := s.validator.Validate(params); err != nil {
		return model.User{}, err
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			s.logger.Info("User service: email already registered", "email", params.Email)
			return model.User{}, fmt.Errorf("email %s is taken: %w", params.Email, model.ErrConflict)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user registered", "user_id", user.ID)

	return user, nil
}

// Login checks credentials and returns a signed access token.
func (s *User) Login(ctx context.Context, params model.LoginParams) (string, error) {
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))

	if err := s.validator.Validate(params); err != nil {
		return "", err
	}

	user, err := s.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		verifyPassword(dummyPasswordHash(), params.Password)
		return "", errInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !verifyPassword(user.PasswordHash, params.Password) {
		s.logger.Info("User service: password mismatch", "user_id", user.ID)
		return "", errInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
