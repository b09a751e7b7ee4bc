package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Runnable is a component with a start/shutdown lifecycle.
type Runnable interface {
	Start(ctx context.Context) error
	Shutdown() error
}

// ConsumerGroup runs several consumers over one shared subscriber and
// shuts them down together.
type ConsumerGroup struct {
	consumers  []Runnable
	subscriber message.Subscriber
	logger     *zap.Logger
}

// NewConsumerGroup creates an empty group over the subscriber.
func NewConsumerGroup(subscriber message.Subscriber, logger *zap.Logger) *ConsumerGroup {
	return &ConsumerGroup{subscriber: subscriber, logger: logger}
}

// Add registers a consumer.
func (g *ConsumerGroup) Add(consumer Runnable) {
	g.consumers = append(g.consumers, consumer)
}

// Start starts every consumer. When one fails, the ones already started
// are stopped again before the error is returned.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	for i, consumer := range g.consumers {
		if err := consumer.Start(ctx); err != nil {
			g.rollback(i)

			return fmt.Errorf("start consumer %d of %d: %w", i+1, len(g.consumers), err)
		}
	}

	g.logger.Info("consumers running", zap.Int("count", len(g.consumers)))

	return nil
}

func (g *ConsumerGroup) rollback(started int) {
	for i := started - 1; i >= 0; i-- {
		if err := g.consumers[i].Shutdown(); err != nil {
			g.logger.Warn("rollback shutdown failed",
				zap.Int("consumer", i),
				zap.Error(err),
			)
		}
	}
}

// Shutdown stops every consumer, then closes the shared subscriber. Errors
// are joined so none is lost.
func (g *ConsumerGroup) Shutdown() error {
	g.logger.Info("stopping consumers", zap.Int("count", len(g.consumers)))

	errs := make([]error, 0, len(g.consumers)+1)

	for _, consumer := range g.consumers {
		errs = append(errs, consumer.Shutdown())
	}

	errs = append(errs, g.subscriber.Close())

	return errors.Join(errs...)
}
