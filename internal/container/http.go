package container

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR content negotiation
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortspan/internal/analytics"
	"github.com/serroba/shortspan/internal/handlers"
	"github.com/serroba/shortspan/internal/health"
	"github.com/serroba/shortspan/internal/messaging"
	"github.com/serroba/shortspan/internal/middleware"
	"github.com/serroba/shortspan/internal/ratelimit"
	"github.com/serroba/shortspan/internal/shortener"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the configured API with every route
// registered. Invoking huma.API wires the whole handler graph.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		api := humachi.New(router, huma.DefaultConfig("shortspan", "1.0.0"))

		api.UseMiddleware(middleware.RequestMeta(api))
		api.UseMiddleware(middleware.RateLimiter(api,
			do.MustInvoke[*ratelimit.PolicyLimiter](i), logger))

		baseURL := options.BaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d", options.Port)
		}

		linkHandler := handlers.NewLinkHandler(
			do.MustInvoke[*shortener.Service](i),
			baseURL,
			do.MustInvoke[messaging.Publish[analytics.LinkCreatedEvent]](i),
			logger,
		)

		statsHandler := handlers.NewStatsHandler(
			do.MustInvoke[shortener.RecordRepository](i),
			do.MustInvoke[shortener.ClickRepository](i),
			do.MustInvoke[shortener.Clock](i),
			logger,
		)

		handlers.RegisterRoutes(api, linkHandler, statsHandler, handlers.NewCheckHandler())
		health.RegisterRoutes(api, health.NewHandler(healthChecks(i, options)))

		return api, nil
	})
}

func healthChecks(i *do.Injector, options *Options) map[string]health.Checker {
	checks := make(map[string]health.Checker)

	switch options.Store {
	case "redis":
		checks["redis"] = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
	case "postgres":
		checks["postgres"] = health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i))
		checks["redis"] = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
	}

	return checks
}
