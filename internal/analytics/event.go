// Package analytics defines the events emitted by the link service and the
// consumers that persist them.
package analytics

import "time"

const (
	// TopicLinkCreated carries LinkCreatedEvent.
	TopicLinkCreated = "link.created"
	// TopicLinkClicked carries ClickEvent.
	TopicLinkClicked = "link.clicked"
)

// LinkCreatedEvent is emitted when a link is shortened.
type LinkCreatedEvent struct {
	Shortcode  string    `json:"shortcode"`
	LongURL    string    `json:"longUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiryTime time.Time `json:"expiryTime"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
}

// ClickEvent is the wire form of one recorded click. Its field set is the
// persisted click shape; consumers append it to the click store unchanged.
type ClickEvent struct {
	Shortcode string    `json:"shortcode"`
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer"`
	Location  string    `json:"location"`
}
