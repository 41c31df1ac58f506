// Package storetest holds the behavior every store adapter must share.
// Adapter packages call RunRepositoryTests from their integration tests.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"moviecatalog/category"
	"moviecatalog/errs"
	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stores is a clean pair of repositories. UnknownID must be a well formed
// id that no stored entity uses.
type Stores struct {
	Movies     movie.Repository
	Categories category.Repository
	UnknownID  string
}

func rating(v float64) *float64 {
	return &v
}

func newMovie(name string) movie.Movie {
	return movie.Movie{
		Name:        name,
		Description: "Description of " + name,
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
		Rating:      rating(3.5),
		Categories:  []string{},
	}
}

func mustCreateMovie(t *testing.T, r movie.Repository, m movie.Movie) movie.Movie {
	t.Helper()
	created, err := r.CreateMovie(context.Background(), m)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

func mustCreateCategory(t *testing.T, r category.Repository, name string) category.Category {
	t.Helper()
	created, err := r.CreateCategory(context.Background(), category.Category{Name: name})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

// nolint: funlen
func RunRepositoryTests(t *testing.T, newStores func(t *testing.T) Stores) {
	ctx := context.Background()

	t.Run("created movie can be fetched by id", func(t *testing.T) {
		s := newStores(t)
		drama := mustCreateCategory(t, s.Categories, "Drama")
		m := newMovie("Inception")
		m.Categories = []string{drama.ID}

		created := mustCreateMovie(t, s.Movies, m)
		fetched, err := s.Movies.GetMovie(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created, fetched)
		assert.Equal(t, m.Name, fetched.Name)
		assert.Equal(t, m.Description, fetched.Description)
		assert.True(t, m.ReleaseDate.Equal(fetched.ReleaseDate))
		assert.Equal(t, m.Rating, fetched.Rating)
		assert.Equal(t, []string{drama.ID}, fetched.Categories)
	})

	t.Run("unknown movie is not found", func(t *testing.T) {
		s := newStores(t)

		_, err := s.Movies.GetMovie(ctx, s.UnknownID)

		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
	})

	t.Run("title search is a case-insensitive literal substring match", func(t *testing.T) {
		s := newStores(t)
		for _, name := range []string{"ABC Movie", "xabcx", "ab c", "a.c"} {
			mustCreateMovie(t, s.Movies, newMovie(name))
		}

		f := movie.Filter{Title: "abc"}
		found, err := s.Movies.FindMovies(ctx, f, movie.NewPage(1, 10))
		require.NoError(t, err)
		count, err := s.Movies.CountMovies(ctx, f)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"ABC Movie", "xabcx"}, names(found))
		assert.Equal(t, int64(2), count)

		dotted, err := s.Movies.FindMovies(ctx, movie.Filter{Title: "a.c"}, movie.NewPage(1, 10))
		require.NoError(t, err)
		assert.Equal(t, []string{"a.c"}, names(dotted))
	})

	t.Run("title and description filters are combined", func(t *testing.T) {
		s := newStores(t)
		a := newMovie("Dream team")
		a.Description = "A heist inside DREAMS"
		b := newMovie("Dream house")
		b.Description = "A haunted house"
		mustCreateMovie(t, s.Movies, a)
		mustCreateMovie(t, s.Movies, b)

		found, err := s.Movies.FindMovies(ctx, movie.Filter{Title: "dream", Description: "dreams"}, movie.NewPage(1, 10))

		require.NoError(t, err)
		assert.Equal(t, []string{"Dream team"}, names(found))
	})

	t.Run("pages partition the collection", func(t *testing.T) {
		s := newStores(t)
		for i := 0; i < 25; i++ {
			mustCreateMovie(t, s.Movies, newMovie(fmt.Sprintf("Movie %02d", i)))
		}

		seen := map[string]bool{}
		for page, expected := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
			found, err := s.Movies.FindMovies(ctx, movie.Filter{}, movie.NewPage(page, 10))
			require.NoError(t, err)
			assert.Len(t, found, expected, "page %d", page)
			for _, m := range found {
				assert.False(t, seen[m.ID], "movie %s returned twice", m.ID)
				seen[m.ID] = true
			}
		}
		assert.Len(t, seen, 25)

		count, err := s.Movies.CountMovies(ctx, movie.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(25), count)
	})

	t.Run("replace overwrites fields and clears an omitted rating", func(t *testing.T) {
		s := newStores(t)
		created := mustCreateMovie(t, s.Movies, newMovie("Before"))
		created.Name = "After"
		created.Rating = nil

		replaced, err := s.Movies.ReplaceMovie(ctx, created)
		require.NoError(t, err)
		fetched, err := s.Movies.GetMovie(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, "After", replaced.Name)
		assert.Equal(t, "After", fetched.Name)
		assert.Nil(t, fetched.Rating)
	})

	t.Run("replacing an unknown movie is not found", func(t *testing.T) {
		s := newStores(t)
		m := newMovie("Ghost")
		m.ID = s.UnknownID

		_, err := s.Movies.ReplaceMovie(ctx, m)

		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
	})

	t.Run("deleted movie is gone", func(t *testing.T) {
		s := newStores(t)
		created := mustCreateMovie(t, s.Movies, newMovie("Short lived"))

		require.NoError(t, s.Movies.DeleteMovie(ctx, created.ID))
		_, err := s.Movies.GetMovie(ctx, created.ID)
		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

		err = s.Movies.DeleteMovie(ctx, created.ID)
		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
	})

	t.Run("movies are listed by category", func(t *testing.T) {
		s := newStores(t)
		drama := mustCreateCategory(t, s.Categories, "Drama")
		empty := mustCreateCategory(t, s.Categories, "Empty")
		inDrama := newMovie("In drama")
		inDrama.Categories = []string{drama.ID}
		created := mustCreateMovie(t, s.Movies, inDrama)
		mustCreateMovie(t, s.Movies, newMovie("No category"))

		found, err := s.Movies.MoviesByCategory(ctx, drama.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{created.ID}, ids(found))

		none, err := s.Movies.MoviesByCategory(ctx, empty.ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("categories are resolved in reference order without dangling ids", func(t *testing.T) {
		s := newStores(t)
		drama := mustCreateCategory(t, s.Categories, "Drama")
		scifi := mustCreateCategory(t, s.Categories, "Sci-Fi")

		found, err := s.Categories.CategoriesByIDs(ctx, []string{scifi.ID, s.UnknownID, drama.ID})

		require.NoError(t, err)
		assert.Equal(t, []category.Category{scifi, drama}, found)
	})
}

func names(movies []movie.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Name
	}
	return out
}

func ids(movies []movie.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}
