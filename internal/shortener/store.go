package shortener

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for a shortcode.
var ErrNotFound = errors.New("record not found")

// RecordRepository stores link records keyed by shortcode.
type RecordRepository interface {
	// InsertIfAbsent inserts the record unless its shortcode is already
	// taken, as one atomic operation. It returns false on collision and
	// must never overwrite an existing record, expired or not.
	InsertIfAbsent(ctx context.Context, record *Record) (bool, error)

	// Find returns the record for the shortcode, or ErrNotFound.
	Find(ctx context.Context, shortcode string) (*Record, error)

	// GetAll returns every retained record.
	GetAll(ctx context.Context) ([]Record, error)
}

// ClickRepository stores click events, append-only.
type ClickRepository interface {
	Append(ctx context.Context, click Click) error
	ListAll(ctx context.Context) ([]Click, error)
	ListByShortcode(ctx context.Context, shortcode string) ([]Click, error)
}

// ClickRecorder receives the click emitted by an active redirect. The
// server wires it either straight to a ClickRepository or to an event
// publisher whose consumer persists asynchronously.
type ClickRecorder interface {
	Record(ctx context.Context, click Click) error
}

// RepositoryRecorder is a ClickRecorder that appends directly to a
// ClickRepository.
type RepositoryRecorder struct {
	clicks ClickRepository
}

// NewRepositoryRecorder creates a recorder backed by the click repository.
func NewRepositoryRecorder(clicks ClickRepository) *RepositoryRecorder {
	return &RepositoryRecorder{clicks: clicks}
}

func (r *RepositoryRecorder) Record(ctx context.Context, click Click) error {
	return r.clicks.Append(ctx, click)
}
