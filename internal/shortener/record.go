package shortener

import "time"

// Record is one shortened link. Records are immutable after creation and
// are never deleted by this service; an expired record keeps its shortcode
// reserved.
type Record struct {
	Shortcode  string    `json:"shortcode"`
	LongURL    string    `json:"longUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiryTime time.Time `json:"expiryTime"`
}

// Click is one redirect traversal of a short link. Clicks are append-only.
type Click struct {
	Shortcode string    `json:"shortcode"`
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer"`
	Location  string    `json:"location"`
}

// DirectReferrer is recorded when the visitor arrived without a referrer.
const DirectReferrer = "Direct"

// NewRecord creates a link record expiring validityMinutes after now.
func NewRecord(code, longURL string, validityMinutes int, now time.Time) *Record {
	return &Record{
		Shortcode:  code,
		LongURL:    longURL,
		CreatedAt:  now,
		ExpiryTime: now.Add(time.Duration(validityMinutes) * time.Minute),
	}
}

// Expired reports whether the record is past its expiry time. The
// comparison is strict: a lookup at the exact expiry instant still counts
// as valid.
func (r *Record) Expired(now time.Time) bool {
	return now.After(r.ExpiryTime)
}

// Clock supplies the current time. It is injected rather than read
// ambiently so that expiry decisions are deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
