package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"moviecatalog/movie"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// searchColumns maps searchable fields to their columns.
var searchColumns = map[movie.Field]string{
	movie.FieldName:        "name",
	movie.FieldDescription: "description",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MovieModel represents the database model for movies. Categories is an
// array of category ids without a foreign key.
type MovieModel struct {
	ID          string         `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	ReleaseDate time.Time      `gorm:"not null"`
	Rating      *float64       `gorm:"column:rating"`
	Categories  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	categories := []string(m.Categories)
	if categories == nil {
		categories = []string{}
	}
	return movie.Movie{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.UTC(),
		Rating:      m.Rating,
		Categories:  categories,
	}
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// search ANDs one ILIKE condition per clause with the substring escaped, so
// it never acts as a pattern.
func (r *MovieRepository) search(ctx context.Context, f movie.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&MovieModel{})
	for _, c := range f.Clauses() {
		q = q.Where(searchColumns[c.Field]+` ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(c.Substring)+"%")
	}
	return q
}

func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter, p movie.Page) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.search(ctx, f).
		Order("created_at, id").
		Offset(p.Skip()).
		Limit(p.Limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

func (r *MovieRepository) CountMovies(ctx context.Context, f movie.Filter) (int64, error) {
	var count int64
	if err := r.search(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := newMovieModel(uuid.NewString(), m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) ReplaceMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := newMovieModel(m.ID, m)
	res := r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Where("id = ?", m.ID).
		Select("name", "description", "release_date", "rating", "categories").
		Updates(&model)
	if res.Error != nil {
		return movie.Movie{}, res.Error
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MovieModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) MoviesByCategory(ctx context.Context, categoryID string) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("? = ANY(categories)", categoryID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

func newMovieModel(id string, m movie.Movie) MovieModel {
	categories := m.Categories
	if categories == nil {
		categories = []string{}
	}
	return MovieModel{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.UTC(),
		Rating:      m.Rating,
		Categories:  pq.StringArray(categories),
	}
}

func toMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies
}
