package shortener_test

import (
	"testing"
	"time"

	"github.com/serroba/shortspan/internal/shortener"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	record := shortener.NewRecord("abc234", "https://example.com", 30, now)

	assert.Equal(t, "abc234", record.Shortcode)
	assert.Equal(t, "https://example.com", record.LongURL)
	assert.Equal(t, now, record.CreatedAt)
	assert.Equal(t, now.Add(30*time.Minute), record.ExpiryTime)
}

func TestRecordExpired(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	record := shortener.NewRecord("abc234", "https://example.com", 30, created)

	t.Run("not expired before expiry", func(t *testing.T) {
		assert.False(t, record.Expired(created.Add(29*time.Minute)))
	})

	t.Run("still valid at the exact expiry instant", func(t *testing.T) {
		assert.False(t, record.Expired(record.ExpiryTime))
	})

	t.Run("expired one instant past expiry", func(t *testing.T) {
		assert.True(t, record.Expired(record.ExpiryTime.Add(time.Nanosecond)))
	})
}
