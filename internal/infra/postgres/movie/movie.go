package infra_postgres_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

// Repository reads the movie catalog from the movies table.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Load(ctx context.Context) ([]model.RawMovie, error) {
	const (
		q = `
		SELECT id, movie_name, director, year, genre, description, duration, imdb_rating
		FROM movies
		ORDER BY id
		`
	)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, q); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return nil, fmt.Errorf("failed to load movies (%s): %w", pqErr.Code.Name(), err)
		}
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	records := make([]model.RawMovie, 0, len(moviesDB))
	for _, m := range moviesDB {
		records = append(records, m.ToRaw())
	}

	return records, nil
}
