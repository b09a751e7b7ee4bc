package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortener"
	"go.uber.org/zap"
)

// NewClickConsumer persists click events into the click repository.
func NewClickConsumer(
	subscriber message.Subscriber,
	clicks shortener.ClickRepository,
	logger *zap.Logger,
) *messaging.Consumer[ClickEvent] {
	handler := func(ctx context.Context, event *ClickEvent) error {
		return clicks.Append(ctx, shortener.Click{
			Shortcode: event.Shortcode,
			Timestamp: event.Timestamp,
			Referrer:  event.Referrer,
			Location:  event.Location,
		})
	}

	return messaging.NewConsumer(subscriber, TopicLinkClicked, handler, logger)
}

// NewLinkCreatedConsumer logs creation events. There is no separate
// persistence for them; the record store already holds the link itself.
func NewLinkCreatedConsumer(
	subscriber message.Subscriber,
	logger *zap.Logger,
) *messaging.Consumer[LinkCreatedEvent] {
	handler := func(_ context.Context, event *LinkCreatedEvent) error {
		logger.Info("link created event received",
			zap.String("shortcode", event.Shortcode),
			zap.String("longUrl", event.LongURL),
			zap.Time("expiryTime", event.ExpiryTime),
		)

		return nil
	}

	return messaging.NewConsumer(subscriber, TopicLinkCreated, handler, logger)
}
