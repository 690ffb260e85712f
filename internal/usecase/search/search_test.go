package usecase_search

import (
	"context"
	"slices"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	infra_memory "github.com/sarahjlfoster/sample-qdev-movies/internal/infra/memory"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
	storage_catalog "github.com/sarahjlfoster/sample-qdev-movies/internal/storage/catalog"
	"github.com/stretchr/testify/assert"
)

type UsecaseSearchUnitSuite struct {
	suite.Suite
}

type RawMovieBuilder struct {
	r model.RawMovie
}

func NewRawMovieBuilder(id int64) *RawMovieBuilder {
	return &RawMovieBuilder{
		r: model.RawMovie{
			ID:          id,
			Name:        "Test Movie",
			Director:    "Test Director",
			Year:        2024,
			Genre:       "Drama",
			Description: "Test description",
			Duration:    100,
			ImdbRating:  4.0,
		},
	}
}

func (b *RawMovieBuilder) WithName(name string) *RawMovieBuilder {
	b.r.Name = name
	return b
}

func (b *RawMovieBuilder) WithGenre(genre string) *RawMovieBuilder {
	b.r.Genre = genre
	return b
}

func (b *RawMovieBuilder) Build() model.RawMovie {
	return b.r
}

func scenarioCatalog() []model.RawMovie {
	return []model.RawMovie{
		NewRawMovieBuilder(1).WithName("The Prison Escape").WithGenre("Drama").Build(),
		NewRawMovieBuilder(2).WithName("Life Journey").WithGenre("Drama").Build(),
		NewRawMovieBuilder(3).WithName("The Masked Hero").WithGenre("Action/Crime").Build(),
	}
}

func wideCatalog() []model.RawMovie {
	return append(scenarioCatalog(),
		NewRawMovieBuilder(4).WithName("Pirate Adventure").WithGenre("Adventure/Comedy").Build(),
		NewRawMovieBuilder(5).WithName("Space Wars").WithGenre("Sci-Fi/Action").Build(),
		NewRawMovieBuilder(6).WithName("The Dream Thief").WithGenre("Sci-Fi/Thriller").Build(),
		NewRawMovieBuilder(7).WithName("Quiet Harbor").WithGenre("Drama").Build(),
		NewRawMovieBuilder(8).WithName("the last heist").WithGenre("action/crime").Build(),
	)
}

func initUsecase(records []model.RawMovie) (*Usecase, *storage_catalog.Storage) {
	catalog := storage_catalog.New(context.Background(), infra_memory.NewMovieSource(records...))
	return New(catalog), catalog
}

func ids(movies []model.Movie) []int64 {
	out := make([]int64, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func (s *UsecaseSearchUnitSuite) TestSearchWithoutFilters(t provider.T) {
	t.Parallel()
	uc, catalog := initUsecase(wideCatalog())

	testCases := []struct {
		name   string
		filter model.SearchFilter
	}{
		{name: "Should return full catalog for zero filter", filter: model.SearchFilter{}},
		{name: "Should return full catalog for empty strings", filter: model.SearchFilter{Name: "", Genre: ""}},
		{name: "Should return full catalog for whitespace-only strings", filter: model.SearchFilter{Name: "   ", Genre: "  \t "}},
		{name: "Should return full catalog for zero id", filter: model.SearchFilter{ID: 0}},
		{name: "Should return full catalog for negative id", filter: model.SearchFilter{ID: -7, Name: " "}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, catalog.All(), uc.Search(tc.filter))
		})
	}
}

func (s *UsecaseSearchUnitSuite) TestSearchScenario(t provider.T) {
	t.Parallel()
	uc, _ := initUsecase(scenarioCatalog())

	testCases := []struct {
		name        string
		filter      model.SearchFilter
		expectedIDs []int64
	}{
		{
			name:        "Should intersect name and genre filters",
			filter:      model.SearchFilter{Name: "The", Genre: "Action"},
			expectedIDs: []int64{3},
		},
		{
			name:        "Should return empty result for unknown id",
			filter:      model.SearchFilter{ID: 5},
			expectedIDs: []int64{},
		},
		{
			name:        "Should return everything in order without filters",
			filter:      model.SearchFilter{},
			expectedIDs: []int64{1, 2, 3},
		},
		{
			name:        "Should match exact id",
			filter:      model.SearchFilter{ID: 2},
			expectedIDs: []int64{2},
		},
		{
			name:        "Should combine all three filters",
			filter:      model.SearchFilter{Name: "Masked", ID: 3, Genre: "Action"},
			expectedIDs: []int64{3},
		},
		{
			name:        "Should return nothing when id contradicts name",
			filter:      model.SearchFilter{Name: "Masked", ID: 1},
			expectedIDs: []int64{},
		},
		{
			name:        "Should match genre by substring of whole genre string",
			filter:      model.SearchFilter{Genre: "crime"},
			expectedIDs: []int64{3},
		},
		{
			name:        "Should trim filter value before matching",
			filter:      model.SearchFilter{Name: "  prison escape  "},
			expectedIDs: []int64{1},
		},
		{
			name:        "Should return nothing for nonexistent name",
			filter:      model.SearchFilter{Name: "NonexistentMovie"},
			expectedIDs: []int64{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			found := uc.Search(tc.filter)
			assert.NotNil(t, found)
			assert.Equal(t, tc.expectedIDs, ids(found))
		})
	}
}

func (s *UsecaseSearchUnitSuite) TestSearchCaseInsensitive(t provider.T) {
	t.Parallel()
	uc, _ := initUsecase(wideCatalog())

	t.Run("Should ignore case of name filter", func(t provider.T) {
		lower := uc.Search(model.SearchFilter{Name: "prison"})
		upper := uc.Search(model.SearchFilter{Name: "PRISON"})
		title := uc.Search(model.SearchFilter{Name: "Prison"})

		assert.Equal(t, []int64{1}, ids(lower))
		assert.Equal(t, lower, upper)
		assert.Equal(t, lower, title)
	})

	t.Run("Should ignore case of genre filter and stored genre", func(t provider.T) {
		lower := uc.Search(model.SearchFilter{Genre: "action"})
		upper := uc.Search(model.SearchFilter{Genre: "ACTION"})

		assert.Equal(t, []int64{3, 5, 8}, ids(lower))
		assert.Equal(t, lower, upper)
	})
}

func (s *UsecaseSearchUnitSuite) TestSearchIntersection(t provider.T) {
	t.Parallel()
	uc, _ := initUsecase(wideCatalog())

	pairs := []struct{ name, genre string }{
		{"The", "Action"},
		{"the", "sci"},
		{"e", "drama"},
		{"Harbor", "Crime"},
		{"a", "/"},
	}

	for _, p := range pairs {
		p := p
		t.Run("Should equal intersection of single filters for "+p.name+"+"+p.genre, func(t provider.T) {
			t.Parallel()
			byName := ids(uc.Search(model.SearchFilter{Name: p.name}))
			byGenre := ids(uc.Search(model.SearchFilter{Genre: p.genre}))

			expected := make([]int64, 0)
			for _, id := range byName {
				if slices.Contains(byGenre, id) {
					expected = append(expected, id)
				}
			}

			assert.Equal(t, expected, ids(uc.Search(model.SearchFilter{Name: p.name, Genre: p.genre})))
		})
	}
}

func (s *UsecaseSearchUnitSuite) TestGenres(t provider.T) {
	t.Parallel()

	t.Run("Should return distinct sorted genres", func(t provider.T) {
		t.Parallel()
		uc, _ := initUsecase(wideCatalog())

		genres := uc.Genres()

		assert.Equal(t, []string{
			"Action/Crime",
			"Adventure/Comedy",
			"Drama",
			"Sci-Fi/Action",
			"Sci-Fi/Thriller",
			"action/crime",
		}, genres)
		assert.True(t, slices.IsSorted(genres))
		assert.NotContains(t, genres, "Crime")
	})

	t.Run("Should return empty list for empty catalog", func(t provider.T) {
		t.Parallel()
		uc, _ := initUsecase(nil)

		genres := uc.Genres()
		assert.NotNil(t, genres)
		assert.Empty(t, genres)
	})
}

func (s *UsecaseSearchUnitSuite) TestMovieByID(t provider.T) {
	t.Parallel()
	uc, _ := initUsecase(scenarioCatalog())

	m, ok := uc.MovieByID(3)
	assert.True(t, ok)
	assert.Equal(t, "The Masked Hero", m.Name)

	_, ok = uc.MovieByID(0)
	assert.False(t, ok)
}

func TestUsecaseSearchUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSearchUnitSuite))
}
