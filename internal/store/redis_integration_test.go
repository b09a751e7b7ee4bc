//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortspan/internal/shortener"
	"github.com/serroba/shortspan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}

	return "localhost:6379"
}

func TestRedisStoreIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: redisAddr()})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	s := store.NewRedisStore(client)
	now := time.Now().UTC().Truncate(time.Second)

	cleanup := func(codes ...string) {
		for _, code := range codes {
			client.Del(ctx, "link:"+code)
			client.SRem(ctx, "shortcodes", code)
		}
		client.Del(ctx, "clicks")
	}

	t.Run("insert and find", func(t *testing.T) {
		defer cleanup("itest-a")

		record := shortener.NewRecord("itest-a", "https://example.com", 30, now)

		inserted, err := s.InsertIfAbsent(ctx, record)
		require.NoError(t, err)
		assert.True(t, inserted)

		found, err := s.Find(ctx, "itest-a")
		require.NoError(t, err)
		assert.Equal(t, record.LongURL, found.LongURL)
		assert.True(t, record.ExpiryTime.Equal(found.ExpiryTime))
	})

	t.Run("second insert loses", func(t *testing.T) {
		defer cleanup("itest-b")

		first := shortener.NewRecord("itest-b", "https://first.com", 30, now)
		second := shortener.NewRecord("itest-b", "https://second.com", 30, now)

		inserted, err := s.InsertIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, inserted)

		inserted, err = s.InsertIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, inserted)

		found, err := s.Find(ctx, "itest-b")
		require.NoError(t, err)
		assert.Equal(t, "https://first.com", found.LongURL)
	})

	t.Run("find unknown", func(t *testing.T) {
		_, err := s.Find(ctx, "itest-missing")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("clicks round trip", func(t *testing.T) {
		defer cleanup()

		click := shortener.Click{
			Shortcode: "itest-c",
			Timestamp: now,
			Referrer:  "Direct",
			Location:  "Unknown",
		}

		require.NoError(t, s.Append(ctx, click))

		byCode, err := s.ListByShortcode(ctx, "itest-c")
		require.NoError(t, err)
		require.Len(t, byCode, 1)
		assert.Equal(t, click.Referrer, byCode[0].Referrer)
	})
}
