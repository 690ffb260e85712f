package usecase_review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/metrics"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/service/review_validator"
)

var (
	ErrMovieNotFound       = errors.New("movie not found")
	ErrInvalidReview       = errors.New("invalid review")
	ErrFailedToStoreReview = errors.New("failed to store review")
	ErrFailedToLoadReviews = errors.New("failed to load reviews")
)

type Catalog interface {
	ByID(id int64) (model.Movie, bool)
}

type Repository interface {
	Store(ctx context.Context, r model.Review) error
	LoadByMovieID(ctx context.Context, movieID int64) ([]model.Review, error)
}

type Usecase struct {
	catalog    Catalog
	repository Repository
	now        func() time.Time

	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(catalog Catalog, repository Repository, opts ...Option) *Usecase {
	u := &Usecase{
		catalog:    catalog,
		repository: repository,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit checks that the movie exists, runs the review rule chain and hands
// an accepted review to the repository.
func (u *Usecase) Submit(ctx context.Context, req model.ReviewRequest) (model.Review, error) {
	if _, ok := u.catalog.ByID(req.MovieID); !ok {
		return model.Review{}, fmt.Errorf("%w: id %d", ErrMovieNotFound, req.MovieID)
	}

	if err := review_validator.Validate(req); err != nil {
		var violation *review_validator.Violation
		if errors.As(err, &violation) {
			metrics.ReviewValidations.WithLabelValues(violation.Code).Inc()
		}
		return model.Review{}, fmt.Errorf("%w: %w", ErrInvalidReview, err)
	}
	metrics.ReviewValidations.WithLabelValues("valid").Inc()

	review := model.Review{
		ID:        uuid.New(),
		MovieID:   req.MovieID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: u.now().UTC(),
	}

	if err := u.repository.Store(ctx, review); err != nil {
		return model.Review{}, fmt.Errorf("%w: %w", ErrFailedToStoreReview, err)
	}

	u.logger.Info("review accepted",
		slog.String("review_id", review.ID.String()),
		slog.Int64("movie_id", review.MovieID),
	)

	return review, nil
}

func (u *Usecase) ListForMovie(ctx context.Context, movieID int64) ([]model.Review, error) {
	if _, ok := u.catalog.ByID(movieID); !ok {
		return nil, fmt.Errorf("%w: id %d", ErrMovieNotFound, movieID)
	}

	reviews, err := u.repository.LoadByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadReviews, err)
	}

	return reviews, nil
}
