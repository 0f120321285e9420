package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nuraya/storefront-api/internal/usecase"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return &logger
}

func TestInjectionGuard(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := InjectionGuard(testLogger())(next)

	t.Run("clean request passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products?keyword=diver", nil)
		rec := httptest.NewRecorder()

		guard.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("operator in query parameter rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products?keyword=%24where", nil)
		rec := httptest.NewRecorder()

		guard.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp statusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})

	t.Run("operator in JSON body rejected", func(t *testing.T) {
		body := `{"email": {"$ne": ""}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		guard.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body restored for downstream handlers", func(t *testing.T) {
		body := `{"email":"a@b.co"}`
		var seen string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			seen = string(b)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		InjectionGuard(testLogger())(inner).ServeHTTP(rec, req)

		assert.Equal(t, body, seen)
	})

	t.Run("non-JSON body passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("plain text"))
		rec := httptest.NewRecorder()

		guard.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAdmin(next)

	t.Run("admin actor passes", func(t *testing.T) {
		actor := usecase.Actor{ID: bson.NewObjectID(), IsAdmin: true}
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = req.WithContext(context.WithValue(req.Context(), actorKey, actor))
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular actor forbidden", func(t *testing.T) {
		actor := usecase.Actor{ID: bson.NewObjectID()}
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = req.WithContext(context.WithValue(req.Context(), actorKey, actor))
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing actor forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	var fromContext string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext, _ = r.Context().Value(requestIDKey).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, fromContext)
	assert.Equal(t, fromContext, rec.Header().Get("X-Request-Id"))
}
