package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/storytrails-server/internal/model"
)

var errDB = errors.New("connection reset")

func TestErrorMapper_Legacy(t *testing.T) {
	invalidToken := fmt.Errorf("%w: token is malformed", model.ErrUnauthenticated)

	tests := []struct {
		name       string
		endpoint   Endpoint
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"create book invalid token", CreateNewBook, invalidToken, http.StatusBadRequest, "bad request"},
		{"create book missing token", CreateNewBook, model.ErrMissingToken, http.StatusBadRequest, "bad request"},
		{"create book invalid body", CreateNewBook, model.NewValidationError("bookName", "is required"), http.StatusBadRequest, "bad request"},
		{"find all books missing token", FindAllBooks, model.ErrMissingToken, http.StatusUnauthorized, "unauthorized"},
		{"find all books invalid token", FindAllBooks, invalidToken, http.StatusBadRequest, "bad request"},
		{"find all books store failure", FindAllBooks, errDB, http.StatusBadRequest, "bad request"},
		{"books in collection missing token", FindAllBooksIntoCollection, model.ErrMissingToken, http.StatusUnauthorized, "unauthorized"},
		{"books in collection invalid token", FindAllBooksIntoCollection, invalidToken, http.StatusNotFound, "not found"},
		{"find book invalid token", FindBookByID, invalidToken, http.StatusNotFound, "not found"},
		{"find book not owner", FindBookByID, model.ErrNotOwner, http.StatusUnauthorized, "unauthorized"},
		{"update book invalid", UpdateBook, model.NewValidationError("pagesAmount", "must be at least 1"), http.StatusNotFound, "not found"},
		{"delete book not found", DeleteBook, model.ErrNotFound, http.StatusNotFound, "not found"},
		{"delete book missing token", DeleteBook, model.ErrMissingToken, http.StatusNotFound, "not found"},
		{"create collection invalid token", CreateNewCollection, invalidToken, http.StatusBadRequest, "bad request"},
		{"find all collections missing token", FindAllCollections, model.ErrMissingToken, http.StatusBadRequest, "bad request"},
		{"find collection not found", FindCollectionByID, model.ErrNotFound, http.StatusNotFound, "not found"},
		{"update collection not found", UpdateCollection, model.ErrNotFound, http.StatusBadRequest, "bad request"},
		{"update collection not owner", UpdateCollection, model.ErrNotOwner, http.StatusUnauthorized, "unauthorized"},
		{"delete collection not found", DeleteCollection, model.ErrNotFound, http.StatusNotFound, "bad request"},
		{"delete collection not owner", DeleteCollection, model.ErrNotOwner, http.StatusUnauthorized, "unauthorized"},
	}

	m := legacyErrors()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := m.Resolve(tt.endpoint, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestErrorMapper_Strict(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing token", model.ErrMissingToken, http.StatusUnauthorized},
		{"not owner", model.ErrNotOwner, http.StatusUnauthorized},
		{"not found", fmt.Errorf("get book: %w", model.ErrNotFound), http.StatusNotFound},
		{"invalid", model.NewValidationError("bookName", "is required"), http.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: email taken", model.ErrConflict), http.StatusConflict},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"storage disabled", model.ErrStorageDisabled, http.StatusNotFound},
		{"internal", errDB, http.StatusInternalServerError},
	}

	m := strictErrors()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for endpoint := range legacyRules {
				status, _ := m.Resolve(endpoint, tt.err)
				assert.Equal(t, tt.wantStatus, status, endpoint)
			}
		})
	}
}

func TestErrorMapper_AddedEndpointsAlwaysStrict(t *testing.T) {
	m := legacyErrors()

	status, msg := m.Resolve(RegisterUser, model.NewValidationError("email", "must be a valid email address"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, msg, "email")

	status, _ = m.Resolve(Login, model.ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, msg = m.Resolve(GetBookCover, errDB)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", msg)
}
