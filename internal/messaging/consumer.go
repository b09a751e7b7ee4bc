package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Handler processes one decoded event. Handlers are synchronous; returning
// an error nacks the message for redelivery.
type Handler[T any] func(ctx context.Context, event *T) error

// Consumer subscribes to one topic and feeds decoded events to a handler.
type Consumer[T any] struct {
	topic      string
	handler    Handler[T]
	subscriber message.Subscriber
	logger     *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewConsumer creates a consumer for one event type on one topic.
func NewConsumer[T any](
	subscriber message.Subscriber,
	topic string,
	handler Handler[T],
	logger *zap.Logger,
) *Consumer[T] {
	return &Consumer[T]{
		topic:      topic,
		handler:    handler,
		subscriber: subscriber,
		logger:     logger,
	}
}

// Topic returns the subscribed topic.
func (c *Consumer[T]) Topic() string {
	return c.topic
}

// Start subscribes and launches the consume loop.
func (c *Consumer[T]) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	msgs, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.topic, err)
	}

	c.done = make(chan struct{})
	go c.run(ctx, msgs)

	return nil
}

func (c *Consumer[T]) run(ctx context.Context, msgs <-chan *message.Message) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			c.process(ctx, msg)
		}
	}
}

// process decodes and handles one message, then tells the broker whether
// to redeliver it.
func (c *Consumer[T]) process(ctx context.Context, msg *message.Message) {
	event, err := decode[T](msg.Payload)
	if err == nil {
		err = c.handler(ctx, event)
	}

	if err != nil {
		c.logger.Error("event not processed",
			zap.String("topic", c.topic),
			zap.String("message_id", msg.UUID),
			zap.Error(err),
		)
		msg.Nack()

		return
	}

	msg.Ack()
}

func decode[T any](payload message.Payload) (*T, error) {
	event := new(T)
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	return event, nil
}

// Shutdown stops the consume loop and waits for an in-flight message to
// finish. Safe to call on a consumer that never started.
func (c *Consumer[T]) Shutdown() error {
	if c.done == nil {
		return nil
	}

	c.cancel()
	<-c.done

	return nil
}
