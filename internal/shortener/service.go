package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/serroba/shortspan/internal/geo"
	"github.com/serroba/shortspan/internal/shortcode"
	"github.com/serroba/shortspan/internal/validate"
	"go.uber.org/zap"
)

// ErrCodeExhausted is returned when repeated generated shortcodes all
// collided with existing records.
var ErrCodeExhausted = errors.New("could not allocate shortcode")

// maxAllocAttempts bounds the generate-and-insert retry loop.
const maxAllocAttempts = 5

// Service implements the link lifecycle: validated submission with unique
// shortcode allocation, and redirect resolution with click recording.
type Service struct {
	records RecordRepository
	clicks  ClickRecorder
	gen     *shortcode.Generator
	clock   Clock
	locator geo.Locator
	logger  *zap.Logger
}

// NewService creates the link service.
func NewService(
	records RecordRepository,
	clicks ClickRecorder,
	gen *shortcode.Generator,
	clock Clock,
	locator geo.Locator,
	logger *zap.Logger,
) *Service {
	return &Service{
		records: records,
		clicks:  clicks,
		gen:     gen,
		clock:   clock,
		locator: locator,
		logger:  logger,
	}
}

// Shorten validates one submission and, when valid, inserts a new record.
//
// A failed validation is an expected outcome, reported through the returned
// EntryResult rather than an error. The uniqueness check inside validation
// is advisory; the store's atomic InsertIfAbsent is authoritative, so a
// user-supplied shortcode that loses the race surfaces as a field error and
// a generated one is retried with a fresh code.
func (s *Service) Shorten(ctx context.Context, entry validate.Entry) (*Record, validate.EntryResult, error) {
	existing, err := s.existingShortcodes(ctx)
	if err != nil {
		return nil, validate.EntryResult{}, fmt.Errorf("loading existing shortcodes: %w", err)
	}

	result := validate.ValidateEntry(entry, existing)
	if !result.Valid {
		return nil, result, nil
	}

	if custom := strings.TrimSpace(entry.Shortcode); custom != "" {
		return s.insertCustom(ctx, custom, result)
	}

	return s.insertGenerated(ctx, result)
}

func (s *Service) insertCustom(
	ctx context.Context, code string, result validate.EntryResult,
) (*Record, validate.EntryResult, error) {
	record := NewRecord(code, result.NormalizedURL, result.Minutes, s.clock.Now())

	inserted, err := s.records.InsertIfAbsent(ctx, record)
	if err != nil {
		return nil, result, fmt.Errorf("inserting record: %w", err)
	}

	if !inserted {
		result.Valid = false
		result.Errors[validate.FieldShortcode] = "This shortcode is already in use"

		return nil, result, nil
	}

	s.logger.Info("link created",
		zap.String("shortcode", record.Shortcode),
		zap.String("longUrl", record.LongURL),
		zap.Time("expiryTime", record.ExpiryTime),
	)

	return record, result, nil
}

func (s *Service) insertGenerated(
	ctx context.Context, result validate.EntryResult,
) (*Record, validate.EntryResult, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		record := NewRecord(s.gen.Generate(), result.NormalizedURL, result.Minutes, s.clock.Now())

		inserted, err := s.records.InsertIfAbsent(ctx, record)
		if err != nil {
			return nil, result, fmt.Errorf("inserting record: %w", err)
		}

		if inserted {
			s.logger.Info("link created",
				zap.String("shortcode", record.Shortcode),
				zap.String("longUrl", record.LongURL),
				zap.Time("expiryTime", record.ExpiryTime),
			)

			return record, result, nil
		}

		s.logger.Warn("generated shortcode collided, retrying",
			zap.String("shortcode", record.Shortcode),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, result, ErrCodeExhausted
}

func (s *Service) existingShortcodes(ctx context.Context) (map[string]struct{}, error) {
	records, err := s.records.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(records))
	for i := range records {
		existing[records[i].Shortcode] = struct{}{}
	}

	return existing, nil
}
