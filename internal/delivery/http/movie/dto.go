package http_movie

import (
	"time"

	"github.com/google/uuid"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

type MovieResponseDTO struct {
	ID          int64   `json:"id" example:"1"`
	Name        string  `json:"movie_name" example:"The Prison Escape"`
	Director    string  `json:"director" example:"John Director"`
	Year        int     `json:"year" example:"1994"`
	Genre       string  `json:"genre" example:"Drama"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" example:"142"`
	ImdbRating  float64 `json:"imdb_rating" example:"5.0"`
}

type SearchParametersDTO struct {
	Name  string `json:"name,omitempty"`
	ID    *int64 `json:"id,omitempty"`
	Genre string `json:"genre,omitempty"`
}

// BrowseResponseDTO carries everything the movie list page renders.
type BrowseResponseDTO struct {
	Movies           []MovieResponseDTO   `json:"movies"`
	SearchPerformed  bool                 `json:"search_performed"`
	NoResults        bool                 `json:"no_results"`
	Message          string               `json:"message"`
	Genres           []string             `json:"genres"`
	SearchParameters *SearchParametersDTO `json:"search_parameters,omitempty"`
}

type SearchResponseDTO struct {
	Success          bool                 `json:"success"`
	Movies           []MovieResponseDTO   `json:"movies"`
	TotalFound       int                  `json:"total_found"`
	Message          string               `json:"message"`
	SearchParameters *SearchParametersDTO `json:"search_parameters,omitempty"`
}

type GenresResponseDTO struct {
	Genres []string `json:"genres"`
}

type ReviewResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type MovieDetailsResponseDTO struct {
	Movie   MovieResponseDTO    `json:"movie"`
	Reviews []ReviewResponseDTO `json:"reviews"`
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
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

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	dtos := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		dtos[i] = ConvertFromMovie(m)
	}
	return dtos
}

func ConvertFromReviewList(reviews []model.Review) []ReviewResponseDTO {
	dtos := make([]ReviewResponseDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = ReviewResponseDTO{
			ID:        r.ID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}
	return dtos
}

func convertFromFilter(f model.SearchFilter) *SearchParametersDTO {
	params := &SearchParametersDTO{
		Name:  f.Name,
		Genre: f.Genre,
	}
	if f.ID != 0 {
		id := f.ID
		params.ID = &id
	}
	return params
}
