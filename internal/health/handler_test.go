package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/shortspan/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) Ping(context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	t.Run("no dependencies is ok", func(t *testing.T) {
		handler := health.NewHandler(nil)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Empty(t, resp.Body.Dependencies)
	})

	t.Run("healthy dependencies are reported", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis":    &stubChecker{},
			"postgres": &stubChecker{},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, map[string]string{
			"redis":    "healthy",
			"postgres": "healthy",
		}, resp.Body.Dependencies)
	})

	t.Run("one failing dependency degrades the service", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis":    &stubChecker{err: errors.New("connection refused")},
			"postgres": &stubChecker{},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Dependencies["redis"])
		assert.Equal(t, "healthy", resp.Body.Dependencies["postgres"])
	})
}
