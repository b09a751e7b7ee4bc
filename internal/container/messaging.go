package container

import (
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortspan/internal/analytics"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortener"
	"go.uber.org/zap"
)

// PublisherGroupPackage provides the event publisher and the typed publish
// functions. Redis-backed deployments publish to Redis streams so the
// consumer binary can pick events up; memory mode uses an in-process
// channel publisher.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		options := do.MustInvoke[*Options](i)
		wmLogger := messaging.NewZapLoggerAdapter(do.MustInvoke[*zap.Logger](i))

		var (
			publisher message.Publisher
			err       error
		)

		if options.Store == "memory" {
			publisher = gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
		} else {
			publisher, err = redisstream.NewPublisher(redisstream.PublisherConfig{
				Client: do.MustInvoke[*redis.Client](i),
			}, wmLogger)
			if err != nil {
				return nil, err
			}
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.LinkCreatedEvent](
			group.Publisher(), analytics.TopicLinkCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.ClickEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ClickEvent](
			group.Publisher(), analytics.TopicLinkClicked), nil
	})
}

// ConsumerGroupPackage provides the consumer group persisting click events.
// It subscribes to Redis streams and requires a redis or postgres click
// repository to write into.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		wmLogger := messaging.NewZapLoggerAdapter(logger)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        do.MustInvoke[*redis.Client](i),
			ConsumerGroup: "shortspan-analytics",
		}, wmLogger)
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(analytics.NewClickConsumer(subscriber, do.MustInvoke[shortener.ClickRepository](i), logger))
		group.Add(analytics.NewLinkCreatedConsumer(subscriber, logger))

		return group, nil
	})
}
