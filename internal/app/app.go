package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sarahjlfoster/sample-qdev-movies/internal/config"
	http_init "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/init"
	http_metrics "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/metrics"
	http_metrics_middleware "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/middleware/metrics"
	http_ratelimit_middleware "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/movie"
	http_review "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/review"
	infra_jsonfile "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/jsonfile"
	infra_memory "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/memory"
	infra_pg_init "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/postgres/init"
	infra_postgres_movie "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/postgres/movie"
	infra_redis_init "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/redis/init"
	infra_redis_review "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/redis/review"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
	storage_catalog "github.com/sarahjlfoster/sample-qdev-movies/internal/storage/catalog"
	usecase_review "github.com/sarahjlfoster/sample-qdev-movies/internal/usecase/review"
	usecase_search "github.com/sarahjlfoster/sample-qdev-movies/internal/usecase/search"
)

const (
	catalogLoadTimeout   = 10 * time.Second
	limiterCleanupPeriod = 10 * time.Minute
)

func Go(cfg *config.Config) {
	logger := setupLogger(cfg.Log.Env)
	slog.SetDefault(logger)

	controllerPool := build(cfg, logger)
	controllerPool.RunAll(cfg.HTTP.Host, cfg.HTTP.Port)
}

// build loads the catalog once and registers every route on a fresh pool.
func build(cfg *config.Config, logger *slog.Logger) *http_init.ControllerPool {
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	catalog := storage_catalog.New(ctx, catalogSource(ctx, cfg.Catalog, cfg.Postgres), storage_catalog.WithLogger(logger))
	cancel()

	searchUC := usecase_search.New(catalog, usecase_search.WithLogger(logger))
	reviewUC := usecase_review.New(catalog, reviewRepository(cfg.Redis), usecase_review.WithLogger(logger))

	var reviewOpts []http_review.ControllerOption
	reviewOpts = append(reviewOpts, http_review.WithLogger(logger))
	if cfg.Limiter.Enabled {
		limiter := http_ratelimit_middleware.New(cfg.Limiter, http_ratelimit_middleware.WithLogger(logger))
		go func() {
			for range time.Tick(limiterCleanupPeriod) {
				limiter.Cleanup()
			}
		}()
		reviewOpts = append(reviewOpts, http_review.WithSubmitMiddleware(limiter.Middleware()))
	}

	controllerPool := http_init.NewControllerPool(http_metrics_middleware.RequestDuration())
	controllerPool.Add(http_movie.New(searchUC, reviewUC, http_movie.WithLogger(logger)))
	controllerPool.Add(http_review.New(reviewUC, reviewOpts...))
	controllerPool.Add(http_metrics.New())

	controllerPool.Register()

	return controllerPool
}

// catalogSource never fails: a source that cannot be reached is returned as one
// whose Load reports the error, so the catalog degrades to empty.
func catalogSource(ctx context.Context, cfg config.Catalog, pg config.Postgres) storage_catalog.Source {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return infra_jsonfile.New(cfg.File)
	case config.CatalogSourcePostgres:
		db, err := infra_pg_init.EstablishConn(ctx, pg)
		if err != nil {
			return failingSource(err)
		}
		// The connection only serves the one-time load.
		return storage_catalog.SourceFunc(func(ctx context.Context) ([]model.RawMovie, error) {
			defer db.Close()
			return infra_postgres_movie.New(db).Load(ctx)
		})
	default:
		return failingSource(fmt.Errorf("unknown catalog source %q", cfg.Source))
	}
}

func failingSource(err error) storage_catalog.SourceFunc {
	return func(context.Context) ([]model.RawMovie, error) {
		return nil, err
	}
}

func reviewRepository(cfg config.Redis) usecase_review.Repository {
	if cfg.Host == "" {
		return infra_memory.NewReviewRepository()
	}
	return infra_redis_review.New(infra_redis_init.MustEstablishConn(cfg), cfg.Key)
}
