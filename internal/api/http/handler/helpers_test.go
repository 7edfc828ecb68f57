package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/storytrails-server/internal/api/http/context"
	"github.com/dtroode/storytrails-server/internal/config"
	"github.com/dtroode/storytrails-server/internal/testutil"
)

var ctxManager = httpctx.NewManager()

func legacyErrors() *ErrorMapper {
	return NewErrorMapper(config.ErrorModeLegacy, testutil.MakeNoopLogger())
}

func strictErrors() *ErrorMapper {
	return NewErrorMapper(config.ErrorModeStrict, testutil.MakeNoopLogger())
}

// request builds a request as it looks after the Authenticate middleware ran.
type request struct {
	method  string
	target  string
	body    string
	id      string
	userID  uuid.UUID
	authErr error
}

func (rq request) build() *http.Request {
	var body io.Reader
	if rq.body != "" {
		body = strings.NewReader(rq.body)
	}
	r := httptest.NewRequest(rq.method, rq.target, body)

	ctx := r.Context()
	switch {
	case rq.authErr != nil:
		ctx = ctxManager.SetAuthErrorToContext(ctx, rq.authErr)
	case rq.userID != uuid.Nil:
		ctx = ctxManager.SetUserIDToContext(ctx, rq.userID)
	}

	if rq.id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", rq.id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return r.WithContext(ctx)
}

func serve(h http.HandlerFunc, rq request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, rq.build())
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func details(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[detailsResponse](t, rec).Details
}

func httptestRecorder(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
