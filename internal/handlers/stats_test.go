package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortspan/internal/handlers"
	"github.com/serroba/shortspan/internal/shortener"
	"github.com/serroba/shortspan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatsHandler(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) *handlers.StatsHandler {
		t.Helper()

		memory := store.NewMemoryStore()

		records := []*shortener.Record{
			shortener.NewRecord("aaa234", "https://a.example.com", 30, now.Add(-time.Minute)),
			shortener.NewRecord("bbb234", "https://b.example.com", 30, now.Add(-time.Minute)),
			shortener.NewRecord("ccc234", "https://c.example.com", 1, now.Add(-time.Hour)),
		}
		for _, record := range records {
			inserted, err := memory.InsertIfAbsent(ctx, record)
			require.NoError(t, err)
			require.True(t, inserted)
		}

		clicks := []shortener.Click{
			{Shortcode: "aaa234", Timestamp: now, Referrer: "Direct", Location: "Unknown"},
			{Shortcode: "bbb234", Timestamp: now, Referrer: "https://news.example", Location: "Unknown"},
			{Shortcode: "bbb234", Timestamp: now.Add(time.Minute), Referrer: "Direct", Location: "Unknown"},
		}
		for _, click := range clicks {
			require.NoError(t, memory.Append(ctx, click))
		}

		clock := &fixedClock{now: now}

		return handlers.NewStatsHandler(memory, memory, clock, zap.NewNop())
	}

	t.Run("aggregates totals and per-link counts", func(t *testing.T) {
		handler := seed(t)

		resp, err := handler.Stats(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, resp.Body.TotalLinks)
		assert.Equal(t, 3, resp.Body.TotalClicks)
		require.Len(t, resp.Body.Links, 3)

		counts := make(map[string]int, len(resp.Body.Links))
		for _, link := range resp.Body.Links {
			counts[link.Shortcode] = link.Clicks
		}

		assert.Equal(t, 1, counts["aaa234"])
		assert.Equal(t, 2, counts["bbb234"])
		assert.Equal(t, 0, counts["ccc234"])
	})

	t.Run("most clicked link", func(t *testing.T) {
		handler := seed(t)

		resp, err := handler.Stats(ctx, nil)

		require.NoError(t, err)
		require.NotNil(t, resp.Body.MostClicked)
		assert.Equal(t, "bbb234", resp.Body.MostClicked.Shortcode)
		assert.Equal(t, 2, resp.Body.MostClicked.Clicks)
	})

	t.Run("expired links stay in the report flagged", func(t *testing.T) {
		handler := seed(t)

		resp, err := handler.Stats(ctx, nil)

		require.NoError(t, err)

		expired := make(map[string]bool, len(resp.Body.Links))
		for _, link := range resp.Body.Links {
			expired[link.Shortcode] = link.Expired
		}

		assert.False(t, expired["aaa234"])
		assert.False(t, expired["bbb234"])
		assert.True(t, expired["ccc234"])
	})

	t.Run("empty store reports zero totals and no most clicked", func(t *testing.T) {
		memory := store.NewMemoryStore()
		handler := handlers.NewStatsHandler(memory, memory, &fixedClock{now: now}, zap.NewNop())

		resp, err := handler.Stats(ctx, nil)

		require.NoError(t, err)
		assert.Zero(t, resp.Body.TotalLinks)
		assert.Zero(t, resp.Body.TotalClicks)
		assert.Nil(t, resp.Body.MostClicked)
		assert.Empty(t, resp.Body.Links)
	})
}

func TestStatsHandlerLinkClicks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	memory := store.NewMemoryStore()

	inserted, err := memory.InsertIfAbsent(ctx, shortener.NewRecord("aaa234", "https://example.com", 30, now))
	require.NoError(t, err)
	require.True(t, inserted)

	require.NoError(t, memory.Append(ctx, shortener.Click{
		Shortcode: "aaa234",
		Timestamp: now,
		Referrer:  "Direct",
		Location:  "New York, NY, USA",
	}))

	handler := handlers.NewStatsHandler(memory, memory, &fixedClock{now: now}, zap.NewNop())

	t.Run("returns the click log for a link", func(t *testing.T) {
		resp, err := handler.LinkClicks(ctx, &handlers.LinkClicksRequest{Code: "aaa234"})

		require.NoError(t, err)
		assert.Equal(t, "aaa234", resp.Body.Shortcode)
		require.Len(t, resp.Body.Clicks, 1)
		assert.Equal(t, "Direct", resp.Body.Clicks[0].Referrer)
		assert.Equal(t, "New York, NY, USA", resp.Body.Clicks[0].Location)
	})

	t.Run("unknown shortcode is a 404", func(t *testing.T) {
		_, err := handler.LinkClicks(ctx, &handlers.LinkClicksRequest{Code: "missing"})

		require.Error(t, err)

		var status huma.StatusError
		require.ErrorAs(t, err, &status)
		assert.Equal(t, http.StatusNotFound, status.GetStatus())
	})

	t.Run("link without clicks gets an empty log", func(t *testing.T) {
		inserted, err := memory.InsertIfAbsent(ctx, shortener.NewRecord("bbb234", "https://example.org", 30, now))
		require.NoError(t, err)
		require.True(t, inserted)

		resp, err := handler.LinkClicks(ctx, &handlers.LinkClicksRequest{Code: "bbb234"})

		require.NoError(t, err)
		assert.Empty(t, resp.Body.Clicks)
	})
}
