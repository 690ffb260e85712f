package model

const EmptyName string = ""

type Movie struct {
	ID          int64
	Name        string
	Director    string
	Year        int
	Genre       string
	Description string
	Duration    int
	ImdbRating  float64
}

// RawMovie is a catalog record as supplied by a source, before validation.
type RawMovie struct {
	ID          int64   `json:"id" db:"id" validate:"gt=0"`
	Name        string  `json:"movieName" db:"movie_name" validate:"required"`
	Director    string  `json:"director" db:"director"`
	Year        int     `json:"year" db:"year"`
	Genre       string  `json:"genre" db:"genre"`
	Description string  `json:"description" db:"description"`
	Duration    int     `json:"duration" db:"duration" validate:"gt=0"`
	ImdbRating  float64 `json:"imdbRating" db:"imdb_rating"`
}

func (r RawMovie) ToDomain() Movie {
	return Movie{
		ID:          r.ID,
		Name:        r.Name,
		Director:    r.Director,
		Year:        r.Year,
		Genre:       r.Genre,
		Description: r.Description,
		Duration:    r.Duration,
		ImdbRating:  r.ImdbRating,
	}
}
