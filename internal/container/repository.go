package container

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortspan/internal/analytics"
	"github.com/serroba/shortspan/internal/geo"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/shortcode"
	"github.com/serroba/shortspan/internal/shortener"
	"github.com/serroba/shortspan/internal/store"
	"go.uber.org/zap"
)

// RepositoryPackage provides the record/click repositories for the
// configured backend, the shortcode generator, clock, locator and the link
// service itself.
func RepositoryPackage(injector *do.Injector) {
	// One memory store instance backs both repositories in memory mode.
	do.Provide(injector, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.RecordRepository, error) {
		options := do.MustInvoke[*Options](i)

		switch options.Store {
		case "memory":
			return do.MustInvoke[*store.MemoryStore](i), nil
		case "redis":
			return store.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
		case "postgres":
			return store.NewPostgresStore(do.MustInvoke[*pgxpool.Pool](i)), nil
		default:
			return nil, fmt.Errorf("unknown store backend %q", options.Store)
		}
	})

	do.Provide(injector, func(i *do.Injector) (shortener.ClickRepository, error) {
		options := do.MustInvoke[*Options](i)

		switch options.Store {
		case "memory":
			return do.MustInvoke[*store.MemoryStore](i), nil
		case "redis":
			return store.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
		case "postgres":
			return store.NewPostgresStore(do.MustInvoke[*pgxpool.Pool](i)), nil
		default:
			return nil, fmt.Errorf("unknown store backend %q", options.Store)
		}
	})

	// In memory mode clicks are appended in-process; otherwise they flow
	// through the event pipeline and the consumer persists them.
	do.Provide(injector, func(i *do.Injector) (shortener.ClickRecorder, error) {
		options := do.MustInvoke[*Options](i)

		if options.Store == "memory" {
			return shortener.NewRepositoryRecorder(do.MustInvoke[shortener.ClickRepository](i)), nil
		}

		return analytics.NewPublisherRecorder(
			do.MustInvoke[messaging.Publish[analytics.ClickEvent]](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortcode.Generator, error) {
		return shortcode.New(do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(injector, func(_ *do.Injector) (shortener.Clock, error) {
		return shortener.SystemClock{}, nil
	})

	do.Provide(injector, func(_ *do.Injector) (geo.Locator, error) {
		return geo.NewMockLocator(shortcode.NewCryptoSource()), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		return shortener.NewService(
			do.MustInvoke[shortener.RecordRepository](i),
			do.MustInvoke[shortener.ClickRecorder](i),
			do.MustInvoke[*shortcode.Generator](i),
			do.MustInvoke[shortener.Clock](i),
			do.MustInvoke[geo.Locator](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}
