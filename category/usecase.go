package category

import (
	"context"

	"moviecatalog/movie"
)

type Service interface {
	AddCategory(ctx context.Context, c Category) (Category, error)
	MovieCategories(ctx context.Context, movieID string) ([]Category, error)
	CategoryMovies(ctx context.Context, categoryID string) ([]movie.Movie, error)
}

// Repository resolves categories. CategoriesByIDs skips ids that do not
// exist and returns the rest in the order of ids.
type Repository interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	CategoriesByIDs(ctx context.Context, ids []string) ([]Category, error)
}

// MovieLookup is the part of the movie store categories depend on.
type MovieLookup interface {
	GetMovie(ctx context.Context, id string) (movie.Movie, error)
	MoviesByCategory(ctx context.Context, categoryID string) ([]movie.Movie, error)
}

type Usecase struct {
	r      Repository
	movies MovieLookup
}

func NewUsecase(r Repository, movies MovieLookup) *Usecase {
	return &Usecase{
		r:      r,
		movies: movies,
	}
}

func (uc *Usecase) AddCategory(ctx context.Context, c Category) (Category, error) {
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	c.ID = ""
	return uc.r.CreateCategory(ctx, c)
}

// MovieCategories expands the category references of a movie.
func (uc *Usecase) MovieCategories(ctx context.Context, movieID string) ([]Category, error) {
	m, err := uc.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if len(m.Categories) == 0 {
		return []Category{}, nil
	}

	categories, err := uc.r.CategoriesByIDs(ctx, m.Categories)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

func (uc *Usecase) CategoryMovies(ctx context.Context, categoryID string) ([]movie.Movie, error) {
	movies, err := uc.movies.MoviesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []movie.Movie{}
	}
	return movies, nil
}
