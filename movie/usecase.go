package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context, f Filter, p Page) (Result, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

// Repository is implemented by every store adapter. GetMovie, ReplaceMovie
// and DeleteMovie return ErrMovieNotFound for an unknown id.
type Repository interface {
	FindMovies(ctx context.Context, f Filter, p Page) ([]Movie, error)
	CountMovies(ctx context.Context, f Filter) (int64, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	ReplaceMovie(ctx context.Context, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	MoviesByCategory(ctx context.Context, categoryID string) ([]Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context, f Filter, p Page) (Result, error) {
	movies, err := uc.r.FindMovies(ctx, f, p)
	if err != nil {
		return Result{}, err
	}

	count, err := uc.r.CountMovies(ctx, f)
	if err != nil {
		return Result{}, err
	}

	if movies == nil {
		movies = []Movie{}
	}
	return Result{Movies: movies, Count: count, Page: p}, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	m.ID = ""
	return uc.r.CreateMovie(ctx, m.WithCategories())
}

// UpdateMovie replaces name, description, releaseDate and rating of the
// stored movie with the values in m. Fields left empty in m become empty.
// Categories are not touched.
func (uc *Usecase) UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error) {
	existing, err := uc.r.GetMovie(ctx, id)
	if err != nil {
		return Movie{}, err
	}

	existing.Name = m.Name
	existing.Description = m.Description
	existing.ReleaseDate = m.ReleaseDate
	existing.Rating = m.Rating

	if err := existing.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.ReplaceMovie(ctx, existing.WithCategories())
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.DeleteMovie(ctx, id)
}
