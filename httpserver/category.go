package httpserver

import (
	"net/http"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

// RegisterCategoryRoutes mounts the category endpoints. Both lookups share
// the :id parameter; on /categories/:id it names a movie.
func (s *Server) RegisterCategoryRoutes(g *echo.Group) {
	g.POST("", s.handleCreateCategory)
	g.GET("/:id", s.handleMovieCategories)
	g.GET("/:id/movies", s.handleCategoryMovies)
}

// handleCreateCategory godoc
// @Summary Create Category
// @Description Add a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category Data"
// @Success 201 {object} category.Category
// @Failure 400 {object} APIResponse
// @Router /categories [post]
func (s *Server) handleCreateCategory(c echo.Context) error {
	if s.CategoryService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "category service not configured")
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.CategoryService.AddCategory(c.Request().Context(), req.ToCategory())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// handleMovieCategories godoc
// @Summary Categories of a Movie
// @Description List the categories referenced by a movie
// @Tags categories
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {array} category.Category
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /categories/{id} [get]
func (s *Server) handleMovieCategories(c echo.Context) error {
	if s.CategoryService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "category service not configured")
	}

	categories, err := s.CategoryService.MovieCategories(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

// handleCategoryMovies godoc
// @Summary Movies of a Category
// @Description List every movie referencing the category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} movie.Movie
// @Failure 500 {object} APIResponse
// @Router /categories/{id}/movies [get]
func (s *Server) handleCategoryMovies(c echo.Context) error {
	if s.CategoryService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "category service not configured")
	}

	movies, err := s.CategoryService.CategoryMovies(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}
