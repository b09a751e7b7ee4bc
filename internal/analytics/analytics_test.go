package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/serroba/shortspan/internal/analytics"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortener"
	"github.com/serroba/shortspan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClickEventsFlowThroughToTheStore(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubsub.Close()

	memory := store.NewMemoryStore()
	logger := zap.NewNop()

	consumer := analytics.NewClickConsumer(pubsub, memory, logger)
	require.NoError(t, consumer.Start(context.Background()))

	defer func() {
		require.NoError(t, consumer.Shutdown())
	}()

	recorder := analytics.NewPublisherRecorder(
		messaging.NewPublishFunc[analytics.ClickEvent](pubsub, analytics.TopicLinkClicked))

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	click := shortener.Click{
		Shortcode: "abc234",
		Timestamp: now,
		Referrer:  "Direct",
		Location:  "Chicago, IL, USA",
	}

	require.NoError(t, recorder.Record(context.Background(), click))

	require.Eventually(t, func() bool {
		clicks, err := memory.ListAll(context.Background())

		return err == nil && len(clicks) == 1
	}, time.Second, 10*time.Millisecond)

	clicks, err := memory.ListByShortcode(context.Background(), "abc234")
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	assert.Equal(t, click, clicks[0])
}

func TestConsumerTopics(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubsub.Close()

	logger := zap.NewNop()

	assert.Equal(t, "link.clicked",
		analytics.NewClickConsumer(pubsub, store.NewMemoryStore(), logger).Topic())
	assert.Equal(t, "link.created",
		analytics.NewLinkCreatedConsumer(pubsub, logger).Topic())
}
