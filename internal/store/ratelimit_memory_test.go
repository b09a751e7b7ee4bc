package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/shortspan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("counts repeated requests in the window", func(t *testing.T) {
		counters := store.NewRateLimitMemoryStore()

		for want := int64(1); want <= 3; want++ {
			count, err := counters.Record(ctx, "client-a", time.Minute)

			require.NoError(t, err)
			assert.Equal(t, want, count)
		}
	})

	t.Run("keys count independently", func(t *testing.T) {
		counters := store.NewRateLimitMemoryStore()

		_, err := counters.Record(ctx, "client-a", time.Minute)
		require.NoError(t, err)

		count, err := counters.Record(ctx, "client-b", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("expired entries fall out of the window", func(t *testing.T) {
		counters := store.NewRateLimitMemoryStore()

		_, err := counters.Record(ctx, "client-a", 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		count, err := counters.Record(ctx, "client-a", 10*time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
