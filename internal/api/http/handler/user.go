package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// UserService defines account operations.
type UserService interface {
	Register(ctx context.Context, params model.RegisterUserParams) (model.User, error)
	Login(ctx context.Context, params model.LoginParams) (string, error)
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// User handles registration and login.
type User struct {
	userService UserService
	errors      *ErrorMapper
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, errors *ErrorMapper, logger *logger.Logger) *User {
	return &User{userService: userService, errors: errors, logger: logger}
}

// Register handles POST /users.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var params model.RegisterUserParams
	if err := decodeJSON(r, &params); err != nil {
		h.errors.Write(w, r, RegisterUser, err)
		return
	}

	user, err := h.userService.Register(r.Context(), params)
	if err != nil {
		h.errors.Write(w, r, RegisterUser, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// Login handles POST /login.
func (h *User) Login(w http.ResponseWriter, r *http.Request) {
	var params model.LoginParams
	if err := decodeJSON(r, &params); err != nil {
		h.errors.Write(w, r, Login, err)
		return
	}

	token, err := h.userService.Login(r.Context(), params)
	if err != nil {
		h.errors.Write(w, r, Login, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
