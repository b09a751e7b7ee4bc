package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortspan/internal/shortener"
	"go.uber.org/zap"
)

// StatsHandler serves the statistics dashboard data.
type StatsHandler struct {
	records shortener.RecordRepository
	clicks  shortener.ClickRepository
	clock   shortener.Clock
	logger  *zap.Logger
}

// NewStatsHandler creates the statistics handler.
func NewStatsHandler(
	records shortener.RecordRepository,
	clicks shortener.ClickRepository,
	clock shortener.Clock,
	logger *zap.Logger,
) *StatsHandler {
	return &StatsHandler{records: records, clicks: clicks, clock: clock, logger: logger}
}

// Stats reports every link with its click count, plus totals and the most
// clicked link. Expired links stay in the report with their state flagged.
func (h *StatsHandler) Stats(ctx context.Context, _ *struct{}) (*StatsResponse, error) {
	records, err := h.records.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to load records", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to load statistics")
	}

	clicks, err := h.clicks.ListAll(ctx)
	if err != nil {
		h.logger.Error("failed to load clicks", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to load statistics")
	}

	counts := make(map[string]int, len(records))
	for _, click := range clicks {
		counts[click.Shortcode]++
	}

	now := h.clock.Now()

	resp := &StatsResponse{}
	resp.Body.TotalLinks = len(records)
	resp.Body.TotalClicks = len(clicks)
	resp.Body.Links = make([]LinkStats, 0, len(records))

	for i := range records {
		record := &records[i]

		stats := LinkStats{
			Shortcode:  record.Shortcode,
			LongURL:    record.LongURL,
			CreatedAt:  record.CreatedAt,
			ExpiryTime: record.ExpiryTime,
			Expired:    record.Expired(now),
			Clicks:     counts[record.Shortcode],
		}

		resp.Body.Links = append(resp.Body.Links, stats)

		if stats.Clicks > 0 &&
			(resp.Body.MostClicked == nil || stats.Clicks > resp.Body.MostClicked.Clicks) {
			mostClicked := stats
			resp.Body.MostClicked = &mostClicked
		}
	}

	return resp, nil
}

// LinkClicks reports the click log for one link. The link itself must
// exist; an unknown shortcode is a 404 even if stale clicks reference it.
func (h *StatsHandler) LinkClicks(ctx context.Context, req *LinkClicksRequest) (*LinkClicksResponse, error) {
	if _, err := h.records.Find(ctx, req.Code); err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("Short URL not found")
		}

		h.logger.Error("failed to load record", zap.String("shortcode", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to load clicks")
	}

	clicks, err := h.clicks.ListByShortcode(ctx, req.Code)
	if err != nil {
		h.logger.Error("failed to load clicks", zap.String("shortcode", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to load clicks")
	}

	resp := &LinkClicksResponse{}
	resp.Body.Shortcode = req.Code
	resp.Body.Clicks = make([]ClickInfo, 0, len(clicks))

	for _, click := range clicks {
		resp.Body.Clicks = append(resp.Body.Clicks, ClickInfo{
			Timestamp: click.Timestamp,
			Referrer:  click.Referrer,
			Location:  click.Location,
		})
	}

	return resp, nil
}
