package usecase_search

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/sarahjlfoster/sample-qdev-movies/internal/metrics"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

type Catalog interface {
	All() []model.Movie
	ByID(id int64) (model.Movie, bool)
}

type Usecase struct {
	catalog Catalog

	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(catalog Catalog, opts ...Option) *Usecase {
	u := &Usecase{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type predicate func(m model.Movie) bool

// Search returns the catalog movies matching every present filter, in catalog order.
// With no filter present it returns the whole catalog.
func (u *Usecase) Search(f model.SearchFilter) []model.Movie {
	movies := u.catalog.All()
	if f.IsEmpty() {
		metrics.SearchRequests.WithLabelValues(strconv.FormatBool(false)).Inc()
		return movies
	}
	metrics.SearchRequests.WithLabelValues(strconv.FormatBool(true)).Inc()

	predicates := buildPredicates(f)
	found := make([]model.Movie, 0)
	for _, m := range movies {
		if matchesAll(m, predicates) {
			found = append(found, m)
		}
	}

	u.logger.Debug("catalog search",
		slog.String("name", f.Name),
		slog.Int64("id", f.ID),
		slog.String("genre", f.Genre),
		slog.Int("found", len(found)),
	)

	return found
}

func buildPredicates(f model.SearchFilter) []predicate {
	predicates := make([]predicate, 0, 3)

	if name, ok := f.NameTerm(); ok {
		predicates = append(predicates, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Name), name)
		})
	}
	if f.HasID() {
		id := f.ID
		predicates = append(predicates, func(m model.Movie) bool {
			return m.ID == id
		})
	}
	if genre, ok := f.GenreTerm(); ok {
		predicates = append(predicates, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Genre), genre)
		})
	}

	return predicates
}

func matchesAll(m model.Movie, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(m) {
			return false
		}
	}
	return true
}

// Genres returns every distinct genre string of the catalog, sorted ascending.
// Genres like "Action/Crime" are kept whole.
func (u *Usecase) Genres() []string {
	set := make(map[string]struct{})
	for _, m := range u.catalog.All() {
		set[m.Genre] = struct{}{}
	}
	genres := make([]string, 0, len(set))
	for g := range set {
		genres = append(genres, g)
	}
	slices.Sort(genres)
	return genres
}

func (u *Usecase) MovieByID(id int64) (model.Movie, bool) {
	return u.catalog.ByID(id)
}
