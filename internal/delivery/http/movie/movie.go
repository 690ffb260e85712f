package http_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/sarahjlfoster/sample-qdev-movies/internal/delivery/http/common"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
	usecase_review "github.com/sarahjlfoster/sample-qdev-movies/internal/usecase/review"
)

const (
	welcomeMessage   = "Welcome to our collection of free movies this month!"
	noResultsMessage = "No movies found matching your search criteria. Try different search terms."
	noFilterMessage  = "Provide at least one search parameter: 'name', 'id' or 'genre'."
)

var errInvalidID = errors.New("invalid movie id")

type SearchUsecase interface {
	Search(f model.SearchFilter) []model.Movie
	Genres() []string
	MovieByID(id int64) (model.Movie, bool)
}

type ReviewLister interface {
	ListForMovie(ctx context.Context, movieID int64) ([]model.Review, error)
}

type Controller struct {
	search  SearchUsecase
	reviews ReviewLister

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(search SearchUsecase,
	reviews ReviewLister,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		search:  search,
		reviews: reviews,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.browse)
	movies.GET("/search", c.searchMovies)
	movies.GET("/:movie_id", c.getMovieDetails)

	router.GET("/genres", c.getGenres)
}

// @Summary Browse movies
// @Description Full catalog, or the filtered subset when any of name, id, genre is given
// @Tags Movies
// @Produce json
// @Success 200 {object} BrowseResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Non-integer id"
// @Router /movies [get]
func (c *Controller) browse(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		c.badID(ctx, err)
		return
	}

	c.logger.Info("browsing movies",
		slog.String("name", filter.Name),
		slog.Int64("id", filter.ID),
		slog.String("genre", filter.Genre),
	)

	movies := c.search.Search(filter)
	response := BrowseResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Genres: c.search.Genres(),
	}

	if filter.IsEmpty() {
		response.Message = welcomeMessage
	} else {
		response.SearchPerformed = true
		response.SearchParameters = convertFromFilter(filter)
		if len(movies) == 0 {
			response.NoResults = true
			response.Message = noResultsMessage
		} else {
			response.Message = foundMessage(len(movies))
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// @Summary Search movies
// @Description Filters combine with AND. At least one filter is required.
// @Tags Movies
// @Produce json
// @Param name query string false "Case-insensitive name fragment"
// @Param id query int false "Exact movie id"
// @Param genre query string false "Case-insensitive genre fragment"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} SearchResponseDTO "No filter given"
// @Router /movies/search [get]
func (c *Controller) searchMovies(ctx *gin.Context) {
	filter, err := parseFilter(ctx)
	if err != nil {
		c.badID(ctx, err)
		return
	}

	if filter.IsEmpty() {
		c.logger.Warn("search requested without parameters")
		ctx.JSON(http.StatusBadRequest, SearchResponseDTO{
			Success: false,
			Movies:  []MovieResponseDTO{},
			Message: noFilterMessage,
		})
		return
	}

	movies := c.search.Search(filter)

	message := foundMessage(len(movies))
	if len(movies) == 0 {
		message = noResultsMessage
	}

	ctx.JSON(http.StatusOK, SearchResponseDTO{
		Success:          true,
		Movies:           ConvertFromMovieList(movies),
		TotalFound:       len(movies),
		Message:          message,
		SearchParameters: convertFromFilter(filter),
	})
}

// @Summary Movie details
// @Description Movie with its reviews in submission order
// @Tags Movies
// @Produce json
// @Param movie_id path int true "Movie id"
// @Success 200 {object} MovieDetailsResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Non-integer id"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovieDetails(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.badID(ctx, fmt.Errorf("%w: %q", errInvalidID, idParam))
		return
	}

	movie, ok := c.search.MovieByID(movieID)
	if !ok {
		c.notFound(ctx, movieID)
		return
	}

	reviews, err := c.reviews.ListForMovie(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_review.ErrMovieNotFound) {
			c.notFound(ctx, movieID)
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

	ctx.JSON(http.StatusOK, MovieDetailsResponseDTO{
		Movie:   ConvertFromMovie(movie),
		Reviews: ConvertFromReviewList(reviews),
	})
}

// @Summary Genres
// @Description Distinct genre strings, sorted
// @Tags Movies
// @Produce json
// @Success 200 {object} GenresResponseDTO
// @Router /genres [get]
func (c *Controller) getGenres(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: c.search.Genres()})
}

func (c *Controller) badID(ctx *gin.Context, err error) {
	c.logger.Warn("invalid movie ID", slog.String("error", err.Error()))
	ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
		Error:   "Invalid movie ID",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func (c *Controller) notFound(ctx *gin.Context, movieID int64) {
	c.logger.Warn("movie not found", slog.Int64("movie_id", movieID))
	ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
		Error:   "Movie not found",
		Message: fmt.Sprintf("Movie with ID %d was not found.", movieID),
		Code:    http.StatusNotFound,
	})
}

// parseFilter reads name, id and genre query params. A blank id counts as absent.
func parseFilter(ctx *gin.Context) (model.SearchFilter, error) {
	filter := model.SearchFilter{
		Name:  ctx.Query("name"),
		Genre: ctx.Query("genre"),
	}

	if raw := strings.TrimSpace(ctx.Query("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.SearchFilter{}, fmt.Errorf("%w: %q", errInvalidID, raw)
		}
		filter.ID = id
	}

	return filter, nil
}

func foundMessage(n int) string {
	if n == 1 {
		return "Found 1 movie matching your search."
	}
	return fmt.Sprintf("Found %d movies matching your search.", n)
}
