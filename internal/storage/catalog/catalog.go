package storage_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/metrics"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

var (
	ErrUnreadableSource = errors.New("catalog source unreadable")
	ErrInvalidRecord    = errors.New("invalid movie record")
	ErrDuplicateID      = errors.New("duplicate movie id")
)

// Source supplies the full raw record sequence of the catalog.
type Source interface {
	Load(ctx context.Context) ([]model.RawMovie, error)
}

type SourceFunc func(ctx context.Context) ([]model.RawMovie, error)

func (f SourceFunc) Load(ctx context.Context) ([]model.RawMovie, error) {
	return f(ctx)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Storage owns the movie catalog and its id index.
// It is filled once by New and never mutated afterwards.
type Storage struct {
	movies []model.Movie
	index  map[int64]model.Movie

	logger *slog.Logger
}

type Option func(*Storage)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// New loads the catalog from src. Ingestion is all-or-nothing: if the source
// fails or any record is rejected, the catalog is empty and a warning is logged.
func New(ctx context.Context, src Source, opts ...Option) *Storage {
	s := &Storage{
		movies: []model.Movie{},
		index:  map[int64]model.Movie{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	movies, index, err := build(ctx, src)
	if err != nil {
		metrics.CatalogLoadFailures.Inc()
		s.logger.Warn("failed to load movie catalog, serving empty catalog",
			slog.String("error", err.Error()),
		)
		metrics.CatalogMoviesLoaded.Set(0)
		return s
	}

	s.movies = movies
	s.index = index
	metrics.CatalogMoviesLoaded.Set(float64(len(movies)))
	s.logger.Info("movie catalog loaded", slog.Int("movies", len(movies)))

	return s
}

func build(ctx context.Context, src Source) ([]model.Movie, map[int64]model.Movie, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("%w: no source configured", ErrUnreadableSource)
	}

	records, err := src.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	movies := make([]model.Movie, 0, len(records))
	index := make(map[int64]model.Movie, len(records))
	for i, r := range records {
		if err := recordValidator().Struct(r); err != nil {
			return nil, nil, fmt.Errorf("%w: record #%d: %w", ErrInvalidRecord, i, err)
		}
		if _, ok := index[r.ID]; ok {
			return nil, nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}

		m := r.ToDomain()
		movies = append(movies, m)
		index[m.ID] = m
	}

	return movies, index, nil
}

// All returns a copy of the catalog in load order.
func (s *Storage) All() []model.Movie {
	movies := make([]model.Movie, len(s.movies))
	copy(movies, s.movies)
	return movies
}

func (s *Storage) ByID(id int64) (model.Movie, bool) {
	if id <= 0 {
		return model.Movie{}, false
	}
	m, ok := s.index[id]
	return m, ok
}

func (s *Storage) Len() int {
	return len(s.movies)
}
