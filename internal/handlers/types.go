package handlers

import "time"

// maxBatchEntries caps how many URLs one submission may carry.
const maxBatchEntries = 5

// ShortenEntry is one URL to shorten within a submission.
type ShortenEntry struct {
	URL             string `doc:"The URL to shorten"                                    example:"https://example.com/very/long/path" json:"url"`
	Shortcode       string `doc:"Optional custom shortcode (3-20 chars)"                example:"my-code"                            json:"shortcode,omitempty"          required:"false"`
	ValidityMinutes string `doc:"Validity period in minutes, defaults to 30 when empty" example:"60"                                 json:"validityMinutes,omitempty"    required:"false"`
}

// ShortenRequest is the request body for creating short links. Up to five
// entries are validated and processed independently.
type ShortenRequest struct {
	Body struct {
		Entries []ShortenEntry `doc:"URLs to shorten" json:"entries" maxItems:"5" minItems:"1"`
	}
}

// ShortenResult is the per-entry outcome: either the created link or the
// field errors that rejected it. Warnings may accompany either.
type ShortenResult struct {
	Shortcode  string            `doc:"Allocated shortcode"                json:"shortcode,omitempty"`
	ShortURL   string            `doc:"Full short URL"                     json:"shortUrl,omitempty"`
	LongURL    string            `doc:"Normalized original URL"            json:"longUrl,omitempty"`
	CreatedAt  *time.Time        `doc:"Creation time"                      json:"createdAt,omitempty"`
	ExpiryTime *time.Time        `doc:"Expiry time"                        json:"expiryTime,omitempty"`
	Errors     map[string]string `doc:"Per-field validation errors"        json:"errors,omitempty"`
	Warnings   map[string]string `doc:"Per-field validation warnings"      json:"warnings,omitempty"`
}

// ShortenResponse carries one result per submitted entry, in order.
type ShortenResponse struct {
	Body struct {
		Results []ShortenResult `doc:"Per-entry results" json:"results"`
	}
}

// RedirectRequest is the request for resolving a short link.
type RedirectRequest struct {
	Code string `doc:"The shortcode" example:"Xk7mPq" path:"code"`
}

// RedirectResponse redirects to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The redirect target" header:"Location"`
	}
}

// CheckRequest is the request body for the URL security check.
type CheckRequest struct {
	Body struct {
		URL string `doc:"The URL to check" example:"https://example.com" json:"url"`
	}
}

// CheckResponse reports the validation outcome and a heuristic security
// score for a URL without shortening it.
type CheckResponse struct {
	Body struct {
		Valid         bool   `doc:"Whether the URL passed validation"      json:"valid"`
		NormalizedURL string `doc:"Normalized URL when valid"              json:"normalizedUrl,omitempty"`
		Error         string `doc:"Rejection reason when invalid"          json:"error,omitempty"`
		Score         int    `doc:"Heuristic security score, 0-100"        json:"score"`
		Level         string `doc:"Security level, Very Low through High"  json:"level"`
	}
}

// LinkStats is one link with its click count and expiry state.
type LinkStats struct {
	Shortcode  string    `json:"shortcode"`
	LongURL    string    `json:"longUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiryTime time.Time `json:"expiryTime"`
	Expired    bool      `json:"expired"`
	Clicks     int       `json:"clicks"`
}

// StatsResponse is the statistics dashboard payload.
type StatsResponse struct {
	Body struct {
		TotalLinks  int        `doc:"Number of links ever created"  json:"totalLinks"`
		TotalClicks int        `doc:"Number of recorded clicks"     json:"totalClicks"`
		MostClicked *LinkStats `doc:"Link with the most clicks"     json:"mostClicked,omitempty"`
		Links       []LinkStats `doc:"All links with click counts"  json:"links"`
	}
}

// LinkClicksRequest asks for the click log of one link.
type LinkClicksRequest struct {
	Code string `doc:"The shortcode" example:"Xk7mPq" path:"code"`
}

// ClickInfo is one click event as reported to the UI.
type ClickInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer"`
	Location  string    `json:"location"`
}

// LinkClicksResponse is the click log for one link.
type LinkClicksResponse struct {
	Body struct {
		Shortcode string      `json:"shortcode"`
		Clicks    []ClickInfo `json:"clicks"`
	}
}
