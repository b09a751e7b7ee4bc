package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/serroba/shortspan/internal/handlers"
	"github.com/serroba/shortspan/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOutput struct {
	Body string `json:"body"`
}

// captureMetaAPI returns a router whose /test endpoint stores the request
// meta it observed.
func captureMetaAPI(t *testing.T, captured *handlers.RequestMeta) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.RequestMeta(api))

	huma.Get(api, "/test", func(ctx context.Context, _ *struct{}) (*testOutput, error) {
		*captured = handlers.RequestMetaFromContext(ctx)

		return &testOutput{Body: "ok"}, nil
	})

	return router
}

func TestRequestMeta(t *testing.T) {
	t.Run("captures user-agent and referrer", func(t *testing.T) {
		var meta handlers.RequestMeta
		router := captureMetaAPI(t, &meta)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		req.Header.Set("Referer", "https://news.example")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "TestAgent/1.0", meta.UserAgent)
		assert.Equal(t, "https://news.example", meta.Referrer)
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		var meta handlers.RequestMeta
		router := captureMetaAPI(t, &meta)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		req.Header.Set("X-Real-IP", "198.51.100.1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "203.0.113.9", meta.ClientIP)
	})

	t.Run("takes the first X-Forwarded-For entry", func(t *testing.T) {
		var meta handlers.RequestMeta
		router := captureMetaAPI(t, &meta)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1, 172.16.0.1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "203.0.113.9", meta.ClientIP)
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		var meta handlers.RequestMeta
		router := captureMetaAPI(t, &meta)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Real-IP", "198.51.100.1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "198.51.100.1", meta.ClientIP)
	})

	t.Run("missing referrer stays empty for the resolver to fill", func(t *testing.T) {
		var meta handlers.RequestMeta
		router := captureMetaAPI(t, &meta)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, meta.Referrer)
	})
}
