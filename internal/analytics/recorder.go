package analytics

import (
	"context"

	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortener"
)

// PublisherRecorder is a shortener.ClickRecorder that publishes clicks to
// the click topic instead of writing the store directly. A consumer
// persists them asynchronously.
type PublisherRecorder struct {
	publish messaging.Publish[ClickEvent]
}

// NewPublisherRecorder creates a recorder over a typed publish function.
func NewPublisherRecorder(publish messaging.Publish[ClickEvent]) *PublisherRecorder {
	return &PublisherRecorder{publish: publish}
}

func (r *PublisherRecorder) Record(_ context.Context, click shortener.Click) error {
	return r.publish(&ClickEvent{
		Shortcode: click.Shortcode,
		Timestamp: click.Timestamp,
		Referrer:  click.Referrer,
		Location:  click.Location,
	})
}
