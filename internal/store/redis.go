package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortspan/internal/shortener"
)

// RedisStore is a Redis implementation of RecordRepository and
// ClickRepository. Records live under individual keys so SET NX gives the
// atomic insert-if-absent; clicks are a list, append-only.
type RedisStore struct {
	client      *redis.Client
	prefix      string // "link:" + shortcode -> record JSON
	clicksKey   string // list of click JSON
	registryKey string // set of every allocated shortcode
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:      client,
		prefix:      "link:",
		clicksKey:   "clicks",
		registryKey: "shortcodes",
	}
}

func (r *RedisStore) InsertIfAbsent(ctx context.Context, record *shortener.Record) (bool, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("marshaling record: %w", err)
	}

	// SET NX is the check-then-insert as one atomic operation. Records
	// never expire in Redis: an expired link keeps its shortcode reserved.
	inserted, err := r.client.SetNX(ctx, r.prefix+record.Shortcode, payload, 0).Result()
	if err != nil {
		return false, err
	}

	if inserted {
		if err := r.client.SAdd(ctx, r.registryKey, record.Shortcode).Err(); err != nil {
			return true, err
		}
	}

	return inserted, nil
}

func (r *RedisStore) Find(ctx context.Context, shortcode string) (*shortener.Record, error) {
	payload, err := r.client.Get(ctx, r.prefix+shortcode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	var record shortener.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling record: %w", err)
	}

	return &record, nil
}

func (r *RedisStore) GetAll(ctx context.Context) ([]shortener.Record, error) {
	codes, err := r.client.SMembers(ctx, r.registryKey).Result()
	if err != nil {
		return nil, err
	}

	records := make([]shortener.Record, 0, len(codes))

	for _, code := range codes {
		record, err := r.Find(ctx, code)
		if err != nil {
			if errors.Is(err, shortener.ErrNotFound) {
				continue
			}

			return nil, err
		}

		records = append(records, *record)
	}

	return records, nil
}

func (r *RedisStore) Append(ctx context.Context, click shortener.Click) error {
	payload, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("marshaling click: %w", err)
	}

	return r.client.RPush(ctx, r.clicksKey, payload).Err()
}

func (r *RedisStore) ListAll(ctx context.Context) ([]shortener.Click, error) {
	payloads, err := r.client.LRange(ctx, r.clicksKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	clicks := make([]shortener.Click, 0, len(payloads))

	for _, payload := range payloads {
		var click shortener.Click
		if err := json.Unmarshal([]byte(payload), &click); err != nil {
			return nil, fmt.Errorf("unmarshaling click: %w", err)
		}

		clicks = append(clicks, click)
	}

	return clicks, nil
}

func (r *RedisStore) ListByShortcode(ctx context.Context, shortcode string) ([]shortener.Click, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var clicks []shortener.Click

	for _, click := range all {
		if click.Shortcode == shortcode {
			clicks = append(clicks, click)
		}
	}

	return clicks, nil
}
