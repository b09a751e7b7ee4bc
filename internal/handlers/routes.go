package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortspan/internal/ratelimit"
)

// RegisterRoutes registers the API with per-endpoint rate limits.
func RegisterRoutes(api huma.API, links *LinkHandler, stats *StatsHandler, check *CheckHandler) {
	// Link creation is the only write path and gets strict limits.
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/api/shorten",
		Summary:     "Shorten URLs",
		Description: "Validates and shortens up to five URLs in one request; entries succeed or fail independently.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, links.Shorten)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/api/check",
		Summary:     "Check URL security",
		Description: "Runs URL validation and reports a heuristic security score without creating a link.",
		Tags:        []string{"Links"},
	}, check.Check)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/stats",
		Summary:     "Link statistics",
		Description: "Reports every link with click counts, totals and the most clicked link.",
		Tags:        []string{"Statistics"},
	}, stats.Stats)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/links/{code}/clicks",
		Summary:     "Click log",
		Description: "Lists the recorded clicks for one link.",
		Tags:        []string{"Statistics"},
	}, stats.LinkClicks)

	// Redirects are read-heavy; keep the limit generous.
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Resolves the shortcode and redirects; expired and unknown links fail distinctly.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, links.Redirect)
}
