package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortspan/internal/analytics"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortener"
	"github.com/serroba/shortspan/internal/validate"
	"go.uber.org/zap"
)

// LinkHandler exposes the link service over HTTP.
type LinkHandler struct {
	service        *shortener.Service
	baseURL        string
	publishCreated messaging.Publish[analytics.LinkCreatedEvent]
	logger         *zap.Logger
}

// NewLinkHandler creates the link handler.
func NewLinkHandler(
	service *shortener.Service,
	baseURL string,
	publishCreated messaging.Publish[analytics.LinkCreatedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		service:        service,
		baseURL:        baseURL,
		publishCreated: publishCreated,
		logger:         logger,
	}
}

// Shorten processes a batch of up to five submissions. Entries are
// validated and inserted independently: an invalid entry reports its field
// errors without aborting the rest.
func (h *LinkHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	if len(req.Body.Entries) > maxBatchEntries {
		return nil, huma.Error422UnprocessableEntity(
			fmt.Sprintf("at most %d URLs per request", maxBatchEntries))
	}

	resp := &ShortenResponse{}
	resp.Body.Results = make([]ShortenResult, 0, len(req.Body.Entries))

	for _, entry := range req.Body.Entries {
		result, err := h.shortenOne(ctx, entry)
		if err != nil {
			return nil, err
		}

		resp.Body.Results = append(resp.Body.Results, result)
	}

	return resp, nil
}

func (h *LinkHandler) shortenOne(ctx context.Context, entry ShortenEntry) (ShortenResult, error) {
	record, validation, err := h.service.Shorten(ctx, validate.Entry{
		LongURL:         entry.URL,
		Shortcode:       entry.Shortcode,
		ValidityMinutes: entry.ValidityMinutes,
	})

	switch {
	case errors.Is(err, shortener.ErrCodeExhausted):
		return ShortenResult{
			Errors:   map[string]string{validate.FieldShortcode: "Could not allocate a unique shortcode, please retry"},
			Warnings: compactMap(validation.Warnings),
		}, nil
	case err != nil:
		h.logger.Error("failed to shorten url", zap.Error(err))

		return ShortenResult{}, huma.Error500InternalServerError("failed to save link")
	}

	if !validation.Valid {
		return ShortenResult{
			Errors:   validation.Errors,
			Warnings: compactMap(validation.Warnings),
		}, nil
	}

	meta := RequestMetaFromContext(ctx)

	if err := h.publishCreated(&analytics.LinkCreatedEvent{
		Shortcode:  record.Shortcode,
		LongURL:    record.LongURL,
		CreatedAt:  record.CreatedAt,
		ExpiryTime: record.ExpiryTime,
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
	}); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("shortcode", record.Shortcode),
			zap.Error(err),
		)
	}

	createdAt := record.CreatedAt
	expiryTime := record.ExpiryTime

	return ShortenResult{
		Shortcode:  record.Shortcode,
		ShortURL:   fmt.Sprintf("%s/%s", h.baseURL, record.Shortcode),
		LongURL:    record.LongURL,
		CreatedAt:  &createdAt,
		ExpiryTime: &expiryTime,
		Warnings:   compactMap(validation.Warnings),
	}, nil
}

// Redirect resolves a shortcode. Not-found and expired links are distinct
// user-visible failures; only an active link records a click.
func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	meta := RequestMetaFromContext(ctx)

	resolution, err := h.service.Resolve(ctx, req.Code, meta.Referrer, meta.ClientIP)
	if err != nil {
		h.logger.Error("failed to resolve shortcode",
			zap.String("shortcode", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to resolve link")
	}

	switch resolution.Outcome {
	case shortener.OutcomeNotFound:
		return nil, huma.Error404NotFound("Short URL not found")
	case shortener.OutcomeExpired:
		return nil, huma.NewError(http.StatusGone, "This short URL has expired")
	default:
		resp := &RedirectResponse{Status: http.StatusFound}
		resp.Headers.Location = resolution.Target

		return resp, nil
	}
}

// compactMap returns nil for an empty map so it serializes as absent.
func compactMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}

	return m
}
