package shortener

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Outcome classifies a redirect lookup.
type Outcome int

const (
	// OutcomeNotFound means no record exists for the shortcode.
	OutcomeNotFound Outcome = iota
	// OutcomeExpired means the record exists but is past its expiry.
	OutcomeExpired
	// OutcomeActive means the record is live; a click was recorded.
	OutcomeActive
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeExpired:
		return "expired"
	case OutcomeActive:
		return "active"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a shortcode.
type Resolution struct {
	Outcome Outcome
	// Target is the redirect destination; set only for OutcomeActive.
	Target string
	// Click is the recorded click event; set only for OutcomeActive.
	Click *Click
}

// Resolve looks up a shortcode and classifies it as not-found, expired or
// active. The lookup always reads the current store state. Exactly one
// click is recorded for an active resolution and none otherwise; the
// record is classified before any click is emitted.
//
// Failure to record the click is logged and never fails the redirect.
func (s *Service) Resolve(ctx context.Context, code, referrer, clientIP string) (Resolution, error) {
	record, err := s.records.Find(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Info("redirect failed, shortcode not found", zap.String("shortcode", code))

			return Resolution{Outcome: OutcomeNotFound}, nil
		}

		return Resolution{}, fmt.Errorf("looking up shortcode: %w", err)
	}

	now := s.clock.Now()

	if record.Expired(now) {
		s.logger.Info("redirect failed, link expired",
			zap.String("shortcode", code),
			zap.Time("expiryTime", record.ExpiryTime),
		)

		return Resolution{Outcome: OutcomeExpired}, nil
	}

	if referrer == "" {
		referrer = DirectReferrer
	}

	click := Click{
		Shortcode: code,
		Timestamp: now,
		Referrer:  referrer,
		Location:  s.locator.Locate(ctx, clientIP),
	}

	if err := s.clicks.Record(ctx, click); err != nil {
		s.logger.Error("failed to record click",
			zap.String("shortcode", code),
			zap.Error(err),
		)
	}

	s.logger.Info("click recorded",
		zap.String("shortcode", code),
		zap.String("referrer", click.Referrer),
	)

	return Resolution{
		Outcome: OutcomeActive,
		Target:  record.LongURL,
		Click:   &click,
	}, nil
}
