package infra_postgres_movie

import (
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

type MovieDB struct {
	ID          int64   `db:"id"`
	Name        string  `db:"movie_name"`
	Director    string  `db:"director"`
	Year        int     `db:"year"`
	Genre       string  `db:"genre"`
	Description string  `db:"description"`
	Duration    int     `db:"duration"`
	ImdbRating  float64 `db:"imdb_rating"`
}

func (m *MovieDB) ToRaw() model.RawMovie {
	return model.RawMovie{
		ID:          m.ID,
		Name:        m.Name,
		Director:    m.Director,
		Year:        m.Year,
		Genre:       m.Genre,
		Description: m.Description,
		Duration:    m.Duration,
		ImdbRating:  m.ImdbRating,
	}
}
