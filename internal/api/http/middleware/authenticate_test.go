package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/storytrails-server/internal/api/http/context"
	"github.com/dtroode/storytrails-server/internal/mocks"
	"github.com/dtroode/storytrails-server/internal/model"
	"github.com/dtroode/storytrails-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		token      string
		setup      func(ts *mocks.TokenService)
		wantUserID uuid.UUID
		wantErr    error
	}{
		{
			name:  "valid token",
			token: "good",
			setup: func(ts *mocks.TokenService) {
				ts.On("GetUserID", mock.Anything, "good").Return(userID, nil)
			},
			wantUserID: userID,
		},
		{
			name:  "missing token",
			token: "",
			setup: func(ts *mocks.TokenService) {
				ts.On("GetUserID", mock.Anything, "").Return(uuid.Nil, model.ErrMissingToken)
			},
			wantErr: model.ErrMissingToken,
		},
		{
			name:  "invalid token",
			token: "bad",
			setup: func(ts *mocks.TokenService) {
				ts.On("GetUserID", mock.Anything, "bad").Return(uuid.Nil, errors.Join(model.ErrUnauthenticated, errors.New("signature is invalid")))
			},
			wantErr: model.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := mocks.NewTokenService(t)
			tt.setup(ts)
			cm := httpctx.NewManager()

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, ok := cm.GetUserIDFromContext(r.Context())
				authErr := cm.GetAuthErrorFromContext(r.Context())

				if tt.wantErr != nil {
					assert.False(t, ok)
					assert.ErrorIs(t, authErr, tt.wantErr)
					return
				}
				assert.True(t, ok)
				assert.Equal(t, tt.wantUserID, gotID)
				assert.NoError(t, authErr)
			})

			r := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.token != "" {
				r.Header.Set(TokenHeader, tt.token)
			}

			NewAuthenticate(ts, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(httptest.NewRecorder(), r)
			assert.True(t, called, "authentication must not short-circuit the request")
		})
	}
}
