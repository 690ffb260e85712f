package infra_memory

import (
	"context"
	"sync"

	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

// ReviewRepository keeps accepted reviews in process memory.
type ReviewRepository struct {
	sync.RWMutex
	data map[int64][]model.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{data: map[int64][]model.Review{}}
}

func (r *ReviewRepository) Store(_ context.Context, review model.Review) error {
	r.Lock()
	defer r.Unlock()
	r.data[review.MovieID] = append(r.data[review.MovieID], review)
	return nil
}

func (r *ReviewRepository) LoadByMovieID(_ context.Context, movieID int64) ([]model.Review, error) {
	r.RLock()
	defer r.RUnlock()
	reviews := make([]model.Review, len(r.data[movieID]))
	copy(reviews, r.data[movieID])
	return reviews, nil
}
