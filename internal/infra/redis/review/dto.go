package infra_redis_review

import (
	"time"

	"github.com/google/uuid"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

type reviewDTO struct {
	ID        uuid.UUID `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func fromDomain(r model.Review) reviewDTO {
	return reviewDTO{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (d reviewDTO) toDomain() model.Review {
	return model.Review{
		ID:        d.ID,
		MovieID:   d.MovieID,
		UserName:  d.UserName,
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
	}
}
