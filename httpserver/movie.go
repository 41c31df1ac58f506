package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"moviecatalog/errs"
	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/:id", s.handleGetMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Page through movies, optionally filtered by case-insensitive title/description substrings
// @Tags movies
// @Produce json
// @Param title query string false "Substring of the movie name"
// @Param description query string false "Substring of the movie description"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} MovieListResponse
// @Failure 500 {object} APIResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	filter := movie.Filter{
		Title:       c.QueryParam("title"),
		Description: c.QueryParam("description"),
	}
	page := movie.NewPage(queryInt(c, "page"), queryInt(c, "limit"))

	result, err := s.MovieService.ListMovies(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieListResponse(moviesURL(c), filter, result))
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Get a movie by id
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} MovieResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieResponse(moviesURL(c), m))
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Add a new movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie Data"
// @Success 201 {object} MovieResponse
// @Failure 400 {object} APIResponse
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newMovieResponse(moviesURL(c), m))
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace name, description, releaseDate and rating of a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body UpdateMovieRequest true "Movie Data"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 422 {object} APIResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	var req UpdateMovieRequest
	bindErr := c.Bind(&req)
	var syntaxErr *json.SyntaxError
	if errors.As(bindErr, &syntaxErr) {
		return bindErr
	}

	// An unknown movie is reported before anything wrong with the body.
	if _, err := s.MovieService.GetMovie(ctx, id); err != nil {
		return unprocessable(err)
	}
	if bindErr != nil {
		return unprocessable(bindErr)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	m, err := s.MovieService.UpdateMovie(ctx, id, req.ToMovie())
	if err != nil {
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete a movie by id
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Deleted Movie")
}

// unprocessable reports every update failure except a missing movie as 422.
func unprocessable(err error) error {
	if errs.ErrorCode(err) == errs.ENOTFOUND {
		return err
	}
	_, message := errorStatus(err)
	return echo.NewHTTPError(http.StatusUnprocessableEntity, message).SetInternal(err)
}

// queryInt returns 0 for a missing or malformed parameter.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return 0
	}
	return v
}
