package http_review

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/common"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/service/review_validator"
	usecase_review "github.com/sarahjlfoster/sample-qdev-movies/internal/usecase/review"
)

type SubmitReviewRequestDTO struct {
	UserName string `json:"user_name" example:"alice"`
	Rating   int    `json:"rating" example:"5"`
	Comment  string `json:"comment" example:"A gripping story from start to finish"`
}

type ReviewResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewsListResponseDTO struct {
	Reviews []ReviewResponseDTO `json:"reviews"`
	Total   int                 `json:"total"`
}

func (r *SubmitReviewRequestDTO) ConvertToReviewRequest(movieID int64) model.ReviewRequest {
	return model.ReviewRequest{
		MovieID:  movieID,
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

func ConvertFromReview(r model.Review) ReviewResponseDTO {
	return ReviewResponseDTO{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type Usecase interface {
	Submit(ctx context.Context, req model.ReviewRequest) (model.Review, error)
	ListForMovie(ctx context.Context, movieID int64) ([]model.Review, error)
}

type Controller struct {
	uc         Usecase
	middleware []gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithSubmitMiddleware runs the given handlers in front of review submission only.
func WithSubmitMiddleware(mw ...gin.HandlerFunc) ControllerOption {
	return func(c *Controller) {
		c.middleware = append(c.middleware, mw...)
	}
}

func New(uc Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/movies/:movie_id/reviews")
	reviews.GET("", c.listReviews)
	reviews.POST("", append(c.middleware, c.submitReview)...)
}

// @Summary Submit review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param movie_id path int true "Movie id"
// @Param request body SubmitReviewRequestDTO true "Review"
// @Success 201 {object} ReviewResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Rejected review, message names the first violated rule"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 429 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /movies/{movie_id}/reviews [post]
func (c *Controller) submitReview(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	var req SubmitReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	review, err := c.uc.Submit(ctx.Request.Context(), req.ConvertToReviewRequest(movieID))
	if err != nil {
		var violation *review_validator.Violation
		switch {
		case errors.Is(err, usecase_review.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error:   "Movie not found",
				Message: err.Error(),
				Code:    http.StatusNotFound,
			})
		case errors.As(err, &violation):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid review",
				Message: violation.Message,
				Code:    http.StatusBadRequest,
			})
		default:
			c.logger.Error("failed to submit review",
				slog.String("error", err.Error()),
				slog.Int64("movie_id", movieID),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to submit review",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromReview(review))
}

// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param movie_id path int true "Movie id"
// @Success 200 {object} ReviewsListResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Router /movies/{movie_id}/reviews [get]
func (c *Controller) listReviews(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	reviews, err := c.uc.ListForMovie(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_review.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error:   "Movie not found",
				Message: err.Error(),
				Code:    http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to load reviews",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load reviews",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	dtos := make([]ReviewResponseDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = ConvertFromReview(r)
	}

	ctx.JSON(http.StatusOK, ReviewsListResponseDTO{
		Reviews: dtos,
		Total:   len(dtos),
	})
}

func (c *Controller) movieID(ctx *gin.Context) (int64, bool) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return 0, false
	}
	return movieID, true
}
