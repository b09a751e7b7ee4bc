package store

import (
	"context"
	"sync"

	"github.com/serroba/shortspan/internal/shortener"
)

// MemoryStore is an in-memory implementation of both RecordRepository and
// ClickRepository. Suitable for tests and single-process deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]shortener.Record
	clicks  []shortener.Click
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]shortener.Record),
	}
}

// InsertIfAbsent inserts the record unless the shortcode is taken. The
// check and insert happen under one lock, so concurrent submissions of the
// same shortcode see exactly one winner.
func (m *MemoryStore) InsertIfAbsent(_ context.Context, record *shortener.Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.Shortcode]; exists {
		return false, nil
	}

	m.records[record.Shortcode] = *record

	return true, nil
}

func (m *MemoryStore) Find(_ context.Context, shortcode string) (*shortener.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[shortcode]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &record, nil
}

func (m *MemoryStore) GetAll(_ context.Context) ([]shortener.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]shortener.Record, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}

	return records, nil
}

func (m *MemoryStore) Append(_ context.Context, click shortener.Click) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clicks = append(m.clicks, click)

	return nil
}

func (m *MemoryStore) ListAll(_ context.Context) ([]shortener.Click, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clicks := make([]shortener.Click, len(m.clicks))
	copy(clicks, m.clicks)

	return clicks, nil
}

func (m *MemoryStore) ListByShortcode(_ context.Context, shortcode string) ([]shortener.Click, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var clicks []shortener.Click

	for _, click := range m.clicks {
		if click.Shortcode == shortcode {
			clicks = append(clicks, click)
		}
	}

	return clicks, nil
}
