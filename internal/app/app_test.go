package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/config"
	infra_memory "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/memory"
	storage_catalog "github.com/sarahjlfoster/sample-qdev-movies/internal/storage/catalog"
	"github.com/stretchr/testify/assert"
)

type AppUnitSuite struct {
	suite.Suite
}

func (s *AppUnitSuite) TestCatalogSource(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		cfg         config.Catalog
		expectedLen int
	}{
		{
			name:        "Should load bundled json file",
			cfg:         config.Catalog{Source: config.CatalogSourceFile, File: "../../data/movies.json"},
			expectedLen: 12,
		},
		{
			name:        "Should serve empty catalog for missing file",
			cfg:         config.Catalog{Source: config.CatalogSourceFile, File: "does-not-exist.json"},
			expectedLen: 0,
		},
		{
			name:        "Should serve empty catalog for unknown source",
			cfg:         config.Catalog{Source: "mongo"},
			expectedLen: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			ctx := context.Background()

			catalog := storage_catalog.New(ctx, catalogSource(ctx, tc.cfg, config.Postgres{}))
			assert.Equal(t, tc.expectedLen, catalog.Len())
		})
	}
}

func (s *AppUnitSuite) TestReviewRepository(t provider.T) {
	t.Run("Should keep reviews in memory without redis host", func(t provider.T) {
		repository := reviewRepository(config.Redis{})
		_, ok := repository.(*infra_memory.ReviewRepository)
		assert.True(t, ok)
	})
}

func (s *AppUnitSuite) TestSetupLogger(t provider.T) {
	t.Run("Should enable debug only in debug env", func(t provider.T) {
		ctx := context.Background()

		assert.True(t, setupLogger(envDebug).Enabled(ctx, slog.LevelDebug))
		assert.False(t, setupLogger(envLocal).Enabled(ctx, slog.LevelDebug))
		assert.False(t, setupLogger("prod").Enabled(ctx, slog.LevelDebug))
		assert.True(t, setupLogger("prod").Enabled(ctx, slog.LevelInfo))
	})
}

func TestAppUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(AppUnitSuite))
}
